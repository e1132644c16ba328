package models

// Application is a creator's bid on one requirement.
//
// The composite unique index on (creator_id, requirement_id) enforces the
// one-application-per-pair invariant at the storage level; the service
// pre-check only exists to return a friendly conflict message.
type Application struct {
	BaseModel
	CreatorID     string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_creator_requirement" json:"creatorId"`
	RequirementID string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_creator_requirement" json:"requirementId"`
	CoverLetter   *string           `json:"coverLetter"`
	ProposedRate  *int              `json:"proposedRate"`
	Status        ApplicationStatus `gorm:"type:varchar(20);default:'pending';not null;index" json:"status"`

	Creator     User        `gorm:"foreignKey:CreatorID" json:"-"`
	Requirement Requirement `gorm:"foreignKey:RequirementID" json:"-"`
}

// CanTransition is the exhaustive transition table for application
// statuses. Transitions only ever leave pending, and each role owns a
// fixed set of target statuses: creators withdraw, brands accept or
// reject. Everything else is invalid, including any move out of a
// terminal status.
func (s ApplicationStatus) CanTransition(role UserRole, target ApplicationStatus) bool {
	if s != ApplicationStatusPending {
		return false
	}
	switch role {
	case UserRoleCreator:
		return target == ApplicationStatusWithdrawn
	case UserRoleBrand:
		return target == ApplicationStatusAccepted || target == ApplicationStatusRejected
	}
	return false
}
