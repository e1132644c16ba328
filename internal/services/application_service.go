package services

import (
	"gorm.io/gorm"

	"collabhub_backend/internal/models"
	"collabhub_backend/internal/repositories"
	"collabhub_backend/internal/services/dto"
	"collabhub_backend/pkg/apperrors"
)

// ApplicationService owns the lifecycle of a creator's bid on a campaign
// requirement and derives accepted partnerships from application history.
type ApplicationService struct {
	appRepo repositories.ApplicationRepository
	reqRepo repositories.RequirementRepository
}

func NewApplicationService(
	appRepo repositories.ApplicationRepository,
	reqRepo repositories.RequirementRepository,
) *ApplicationService {
	return &ApplicationService{
		appRepo: appRepo,
		reqRepo: reqRepo,
	}
}

// Apply submits a new application. The requirement must exist and be
// open, and the creator must not have applied to it before — any prior
// row for the pair blocks re-application, whatever its status.
func (s *ApplicationService) Apply(db *gorm.DB, req *dto.CreateApplicationRequest) (*dto.ApplicationResponse, error) {
	requirement, err := s.reqRepo.FindByID(db, req.RequirementID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequirementNotFound
		}
		return nil, err
	}
	if requirement.Status != models.RequirementStatusOpen {
		return nil, apperrors.ErrRequirementNotOpen
	}

	exists, err := s.appRepo.ExistsForPair(db, req.CreatorID, req.RequirementID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperrors.ErrAlreadyApplied
	}

	app := &models.Application{
		CreatorID:     req.CreatorID,
		RequirementID: req.RequirementID,
		CoverLetter:   req.CoverLetter,
		ProposedRate:  req.ProposedRate,
		Status:        models.ApplicationStatusPending,
	}
	if err := s.appRepo.Create(db, app); err != nil {
		// The unique index catches the race the pre-check cannot.
		if apperrors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, err
	}

	return applicationResponse(app), nil
}

// UpdateStatus applies one role-gated transition. Creators may withdraw
// their own pending applications; the owning brand may accept or reject
// pending applications on its requirements. The write itself is
// conditional on the stored status, so under race only one transition
// wins.
func (s *ApplicationService) UpdateStatus(
	db *gorm.DB,
	applicationID, actorID string,
	role models.UserRole,
	newStatus models.ApplicationStatus,
) (*dto.ApplicationResponse, error) {
	app, err := s.appRepo.FindByID(db, applicationID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}

	switch role {
	case models.UserRoleCreator:
		if app.CreatorID != actorID {
			return nil, apperrors.ErrNotApplicationOwner
		}
		if newStatus != models.ApplicationStatusWithdrawn {
			return nil, apperrors.ErrInvalidTransition("Creators can only withdraw applications")
		}
	case models.UserRoleBrand:
		requirement, err := s.reqRepo.FindByID(db, app.RequirementID)
		if err != nil {
			if apperrors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrRequirementNotFound
			}
			return nil, err
		}
		if requirement.BrandID != actorID {
			return nil, apperrors.ErrNotRequirementOwner
		}
		if newStatus != models.ApplicationStatusAccepted && newStatus != models.ApplicationStatusRejected {
			return nil, apperrors.ErrInvalidTransition("Brands can only accept or reject applications")
		}
	default:
		return nil, apperrors.NewForbiddenError("Role cannot change application status")
	}

	if !app.Status.CanTransition(role, newStatus) {
		return nil, apperrors.ErrInvalidTransition("Can only update pending applications")
	}

	rows, err := s.appRepo.UpdateStatusIfPending(db, applicationID, newStatus)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		// Lost the CAS: another transition landed first.
		return nil, apperrors.ErrInvalidTransition("Can only update pending applications")
	}

	app, err = s.appRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, err
	}
	return applicationResponse(app), nil
}

func (s *ApplicationService) GetByID(db *gorm.DB, id string) (*repositories.ApplicationWithRequirement, error) {
	row, err := s.appRepo.FindWithRequirement(db, id)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, err
	}
	return row, nil
}

func (s *ApplicationService) ListMine(db *gorm.DB, creatorID string) ([]repositories.ApplicationWithRequirement, error) {
	return s.appRepo.ListByCreator(db, creatorID)
}

// ListForRequirement returns applicants for a requirement the caller owns.
func (s *ApplicationService) ListForRequirement(db *gorm.DB, requirementID, brandID string) ([]repositories.ApplicationWithApplicant, error) {
	requirement, err := s.reqRepo.FindByID(db, requirementID)
	if err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrRequirementNotFound
		}
		return nil, err
	}
	if requirement.BrandID != brandID {
		return nil, apperrors.ErrNotRequirementOwner
	}
	return s.appRepo.ListByRequirement(db, requirementID)
}

// HasAcceptedRelationship reports whether any accepted application links
// the two users, in either role direction.
func (s *ApplicationService) HasAcceptedRelationship(db *gorm.DB, userA, userB string) (bool, error) {
	return s.appRepo.HasAcceptedRelationship(db, userA, userB)
}

// ListAcceptedPartners returns the user's accepted counterparts, one
// entry per distinct partner (first accepted occurrence wins).
func (s *ApplicationService) ListAcceptedPartners(db *gorm.DB, userID string, role models.UserRole) ([]dto.PartnerResponse, error) {
	var rows []repositories.PartnerRow
	var err error

	switch role {
	case models.UserRoleCreator:
		rows, err = s.appRepo.ListAcceptedBrands(db, userID)
	case models.UserRoleBrand:
		rows, err = s.appRepo.ListAcceptedCreators(db, userID)
	default:
		return []dto.PartnerResponse{}, nil
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(rows))
	partners := make([]dto.PartnerResponse, 0, len(rows))
	for _, row := range rows {
		if seen[row.UserID] {
			continue
		}
		seen[row.UserID] = true
		partners = append(partners, dto.PartnerResponse{
			UserID: row.UserID,
			Name: resolveName(
				literal(row.DisplayName),
				literal(row.CompanyName),
				fullName(row.FirstName, row.LastName),
				literal(row.UserID),
			),
		})
	}
	return partners, nil
}

func applicationResponse(app *models.Application) *dto.ApplicationResponse {
	return &dto.ApplicationResponse{
		ID:            app.ID,
		CreatorID:     app.CreatorID,
		RequirementID: app.RequirementID,
		CoverLetter:   app.CoverLetter,
		ProposedRate:  app.ProposedRate,
		Status:        app.Status,
		CreatedAt:     app.CreatedAt,
		UpdatedAt:     app.UpdatedAt,
	}
}
