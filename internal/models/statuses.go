package models

type UserStatus string
type UserRole string
type RequirementStatus string
type ApplicationStatus string

const (
	UserStatusPending   UserStatus = "pending"
	UserStatusActive    UserStatus = "active"
	UserStatusSuspended UserStatus = "suspended"
	UserStatusBanned    UserStatus = "banned"

	UserRoleCreator UserRole = "creator"
	UserRoleBrand   UserRole = "brand"
	UserRoleAdmin   UserRole = "admin"

	RequirementStatusOpen   RequirementStatus = "open"
	RequirementStatusClosed RequirementStatus = "closed"
	RequirementStatusPaused RequirementStatus = "paused"

	ApplicationStatusPending   ApplicationStatus = "pending"
	ApplicationStatusAccepted  ApplicationStatus = "accepted"
	ApplicationStatusRejected  ApplicationStatus = "rejected"
	ApplicationStatusWithdrawn ApplicationStatus = "withdrawn"
)

// ParseApplicationStatus maps raw input to the closed status set.
func ParseApplicationStatus(s string) (ApplicationStatus, bool) {
	switch ApplicationStatus(s) {
	case ApplicationStatusPending, ApplicationStatusAccepted,
		ApplicationStatusRejected, ApplicationStatusWithdrawn:
		return ApplicationStatus(s), true
	}
	return "", false
}

func ParseUserRole(s string) (UserRole, bool) {
	switch UserRole(s) {
	case UserRoleCreator, UserRoleBrand, UserRoleAdmin:
		return UserRole(s), true
	}
	return "", false
}

// IsTerminal reports whether no further transition may leave this status.
func (s ApplicationStatus) IsTerminal() bool {
	return s == ApplicationStatusAccepted ||
		s == ApplicationStatusRejected ||
		s == ApplicationStatusWithdrawn
}
