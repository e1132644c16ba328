package apperrors

import "net/http"

// Predefined domain errors for the application and feedback subsystems.
// Services return these directly; handlers render them via HandleError.

// --- Applications ---

var ErrRequirementNotFound = New(
	CodeNotFound,
	"application",
	"Requirement not found",
	http.StatusNotFound,
)

var ErrRequirementNotOpen = New(
	CodeInvalidStatus,
	"application",
	"This campaign is not currently accepting applications",
	http.StatusBadRequest,
)

var ErrAlreadyApplied = New(
	CodeConflict,
	"application",
	"You have already applied to this campaign",
	http.StatusConflict,
)

var ErrApplicationNotFound = New(
	CodeNotFound,
	"application",
	"Application not found",
	http.StatusNotFound,
)

var ErrNotApplicationOwner = New(
	CodeForbidden,
	"application",
	"You do not own this application",
	http.StatusForbidden,
)

var ErrNotRequirementOwner = New(
	CodeForbidden,
	"application",
	"You do not own this requirement",
	http.StatusForbidden,
)

// ErrInvalidTransition is the factory for rejected status transitions;
// the message names the rule the caller broke.
func ErrInvalidTransition(message string) *AppError {
	return New(CodeInvalidOperation, "application", message, http.StatusBadRequest)
}

// --- Feedback ---

var ErrUserNotFound = New(
	CodeNotFound,
	"feedback",
	"User not found",
	http.StatusNotFound,
)

var ErrSelfRating = New(
	CodeInvalidOperation,
	"feedback",
	"Cannot rate yourself",
	http.StatusBadRequest,
)

var ErrSelfReview = New(
	CodeInvalidOperation,
	"feedback",
	"Cannot review yourself",
	http.StatusBadRequest,
)

var ErrNoAcceptedRelationship = New(
	CodeForbidden,
	"feedback",
	"You can only leave feedback for users after an accepted application",
	http.StatusForbidden,
)

// --- Generic factories ---

func ErrNotFound(err error) *AppError {
	return Wrap(err, CodeNotFound, "resource", "Resource not found", http.StatusNotFound)
}

func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}
