package repositories

import (
	"time"

	"gorm.io/gorm"

	"collabhub_backend/internal/models"
)

// ApplicationWithRequirement is the read projection for a creator's own
// application list and the single-application view.
type ApplicationWithRequirement struct {
	ID                     string                   `json:"id"`
	RequirementID          string                   `json:"requirementId"`
	CreatorID              string                   `json:"creatorId"`
	CoverLetter            *string                  `json:"coverLetter"`
	ProposedRate           *int                     `json:"proposedRate"`
	Status                 models.ApplicationStatus `json:"status"`
	CreatedAt              time.Time                `json:"createdAt"`
	UpdatedAt              time.Time                `json:"updatedAt"`
	RequirementTitle       string                   `json:"requirementTitle"`
	RequirementDescription string                   `json:"requirementDescription"`
	RequirementStatus      models.RequirementStatus `json:"requirementStatus"`
	BudgetMin              *int                     `json:"budgetMin"`
	BudgetMax              *int                     `json:"budgetMax"`
	BrandID                string                   `json:"brandId"`
	BrandName              string                   `json:"brandName"`
}

// ApplicationWithApplicant is the read projection the requirement owner
// sees for each applicant.
type ApplicationWithApplicant struct {
	ID                 string                   `json:"id"`
	CreatorID          string                   `json:"creatorId"`
	CoverLetter        *string                  `json:"coverLetter"`
	ProposedRate       *int                     `json:"proposedRate"`
	Status             models.ApplicationStatus `json:"status"`
	CreatedAt          time.Time                `json:"createdAt"`
	CreatorFirstName   string                   `json:"creatorFirstName"`
	CreatorLastName    string                   `json:"creatorLastName"`
	CreatorEmail       string                   `json:"creatorEmail"`
	CreatorDisplayName string                   `json:"creatorDisplayName"`
}

// PartnerRow is one accepted counterpart before name resolution and
// deduplication in the service layer.
type PartnerRow struct {
	UserID      string
	DisplayName string
	CompanyName string
	FirstName   string
	LastName    string
}

type ApplicationRepository interface {
	Create(db *gorm.DB, app *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	ExistsForPair(db *gorm.DB, creatorID, requirementID string) (bool, error)
	// UpdateStatusIfPending is a compare-and-swap on the stored status:
	// the row is only touched when it is still pending at write time.
	// Returns the number of rows updated (0 means the CAS lost).
	UpdateStatusIfPending(db *gorm.DB, id string, newStatus models.ApplicationStatus) (int64, error)

	ListByCreator(db *gorm.DB, creatorID string) ([]ApplicationWithRequirement, error)
	ListByRequirement(db *gorm.DB, requirementID string) ([]ApplicationWithApplicant, error)
	FindWithRequirement(db *gorm.DB, id string) (*ApplicationWithRequirement, error)

	// HasAcceptedRelationship runs one direction-agnostic query, so the
	// result cannot depend on argument order.
	HasAcceptedRelationship(db *gorm.DB, userA, userB string) (bool, error)
	ListAcceptedBrands(db *gorm.DB, creatorID string) ([]PartnerRow, error)
	ListAcceptedCreators(db *gorm.DB, brandID string) ([]PartnerRow, error)
}

type ApplicationRepositoryImpl struct{}

func NewApplicationRepository() ApplicationRepository {
	return &ApplicationRepositoryImpl{}
}

func (r *ApplicationRepositoryImpl) Create(db *gorm.DB, app *models.Application) error {
	return db.Create(app).Error
}

func (r *ApplicationRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var app models.Application
	if err := db.First(&app, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepositoryImpl) ExistsForPair(db *gorm.DB, creatorID, requirementID string) (bool, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("creator_id = ? AND requirement_id = ?", creatorID, requirementID).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) UpdateStatusIfPending(db *gorm.DB, id string, newStatus models.ApplicationStatus) (int64, error) {
	res := db.Model(&models.Application{}).
		Where("id = ? AND status = ?", id, models.ApplicationStatusPending).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": time.Now(),
		})
	return res.RowsAffected, res.Error
}

func (r *ApplicationRepositoryImpl) ListByCreator(db *gorm.DB, creatorID string) ([]ApplicationWithRequirement, error) {
	var rows []ApplicationWithRequirement
	err := db.Table("applications").
		Select(`applications.id, applications.requirement_id, applications.creator_id,
			applications.cover_letter, applications.proposed_rate, applications.status,
			applications.created_at, applications.updated_at,
			requirements.title AS requirement_title,
			requirements.description AS requirement_description,
			requirements.status AS requirement_status,
			requirements.budget_min, requirements.budget_max,
			requirements.brand_id,
			COALESCE(brand_profiles.company_name, '') AS brand_name`).
		Joins("JOIN requirements ON requirements.id = applications.requirement_id").
		Joins("LEFT JOIN brand_profiles ON brand_profiles.user_id = requirements.brand_id").
		Where("applications.creator_id = ?", creatorID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepositoryImpl) ListByRequirement(db *gorm.DB, requirementID string) ([]ApplicationWithApplicant, error) {
	var rows []ApplicationWithApplicant
	err := db.Table("applications").
		Select(`applications.id, applications.creator_id, applications.cover_letter,
			applications.proposed_rate, applications.status, applications.created_at,
			users.first_name AS creator_first_name,
			users.last_name AS creator_last_name,
			users.email AS creator_email,
			COALESCE(creator_profiles.display_name, '') AS creator_display_name`).
		Joins("JOIN users ON users.id = applications.creator_id").
		Joins("LEFT JOIN creator_profiles ON creator_profiles.user_id = applications.creator_id").
		Where("applications.requirement_id = ?", requirementID).
		Order("applications.created_at DESC").
		Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepositoryImpl) FindWithRequirement(db *gorm.DB, id string) (*ApplicationWithRequirement, error) {
	var rows []ApplicationWithRequirement
	err := db.Table("applications").
		Select(`applications.id, applications.requirement_id, applications.creator_id,
			applications.cover_letter, applications.proposed_rate, applications.status,
			applications.created_at, applications.updated_at,
			requirements.title AS requirement_title,
			requirements.description AS requirement_description,
			requirements.status AS requirement_status,
			requirements.budget_min, requirements.budget_max,
			requirements.brand_id,
			COALESCE(brand_profiles.company_name, '') AS brand_name`).
		Joins("JOIN requirements ON requirements.id = applications.requirement_id").
		Joins("LEFT JOIN brand_profiles ON brand_profiles.user_id = requirements.brand_id").
		Where("applications.id = ?", id).
		Limit(1).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, gorm.ErrRecordNotFound
	}
	return &rows[0], nil
}

func (r *ApplicationRepositoryImpl) HasAcceptedRelationship(db *gorm.DB, userA, userB string) (bool, error) {
	var count int64
	err := db.Table("applications").
		Joins("JOIN requirements ON requirements.id = applications.requirement_id").
		Where("applications.status = ?", models.ApplicationStatusAccepted).
		Where(`(applications.creator_id = ? AND requirements.brand_id = ?)
			OR (applications.creator_id = ? AND requirements.brand_id = ?)`,
			userA, userB, userB, userA).
		Count(&count).Error
	return count > 0, err
}

func (r *ApplicationRepositoryImpl) ListAcceptedBrands(db *gorm.DB, creatorID string) ([]PartnerRow, error) {
	var rows []PartnerRow
	err := db.Table("applications").
		Select(`requirements.brand_id AS user_id,
			COALESCE(brand_profiles.company_name, '') AS company_name,
			COALESCE(users.first_name, '') AS first_name,
			COALESCE(users.last_name, '') AS last_name`).
		Joins("JOIN requirements ON requirements.id = applications.requirement_id").
		Joins("JOIN users ON users.id = requirements.brand_id").
		Joins("LEFT JOIN brand_profiles ON brand_profiles.user_id = requirements.brand_id").
		Where("applications.creator_id = ? AND applications.status = ?", creatorID, models.ApplicationStatusAccepted).
		Order("applications.created_at ASC").
		Scan(&rows).Error
	return rows, err
}

func (r *ApplicationRepositoryImpl) ListAcceptedCreators(db *gorm.DB, brandID string) ([]PartnerRow, error) {
	var rows []PartnerRow
	err := db.Table("applications").
		Select(`applications.creator_id AS user_id,
			COALESCE(creator_profiles.display_name, '') AS display_name,
			COALESCE(users.first_name, '') AS first_name,
			COALESCE(users.last_name, '') AS last_name`).
		Joins("JOIN requirements ON requirements.id = applications.requirement_id").
		Joins("JOIN users ON users.id = applications.creator_id").
		Joins("LEFT JOIN creator_profiles ON creator_profiles.user_id = applications.creator_id").
		Where("requirements.brand_id = ? AND applications.status = ?", brandID, models.ApplicationStatusAccepted).
		Order("applications.created_at ASC").
		Scan(&rows).Error
	return rows, err
}
