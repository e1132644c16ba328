package dto

import (
	"time"

	"collabhub_backend/internal/models"
)

type CreateApplicationRequest struct {
	CreatorID     string  `json:"-"`
	RequirementID string  `json:"requirementId" validate:"required,uuid"`
	CoverLetter   *string `json:"coverLetter" validate:"omitempty,max=5000"`
	ProposedRate  *int    `json:"proposedRate" validate:"omitempty,min=0"`
}

type UpdateApplicationStatusRequest struct {
	Status string `json:"status" validate:"required,is-application-status"`
}

type ApplicationResponse struct {
	ID            string                   `json:"id"`
	CreatorID     string                   `json:"creatorId"`
	RequirementID string                   `json:"requirementId"`
	CoverLetter   *string                  `json:"coverLetter,omitempty"`
	ProposedRate  *int                     `json:"proposedRate,omitempty"`
	Status        models.ApplicationStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
	UpdatedAt     time.Time                `json:"updatedAt"`
}

// PartnerResponse is one accepted counterpart of the current user, with
// the display name already resolved.
type PartnerResponse struct {
	UserID string `json:"userId"`
	Name   string `json:"name"`
}
