package repositories

import (
	"gorm.io/gorm"

	"collabhub_backend/internal/models"
)

// RequirementRepository is the lookup side of the requirements table.
// Posting and editing requirements is owned by another subsystem; the
// application lifecycle only needs the owner and the current status.
type RequirementRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Requirement, error)
}

type RequirementRepositoryImpl struct{}

func NewRequirementRepository() RequirementRepository {
	return &RequirementRepositoryImpl{}
}

func (r *RequirementRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Requirement, error) {
	var req models.Requirement
	if err := db.First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &req, nil
}
