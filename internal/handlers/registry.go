package handlers

import (
	"collabhub_backend/internal/services"
	"collabhub_backend/internal/validator"
)

// AppHandlers groups every HTTP handler for route registration.
type AppHandlers struct {
	ApplicationHandler *ApplicationHandler
	FeedbackHandler    *FeedbackHandler
}

func NewAppHandlers(container *services.ServiceContainer) *AppHandlers {
	base := NewBaseHandler(validator.New())

	return &AppHandlers{
		ApplicationHandler: NewApplicationHandler(base, container.ApplicationService),
		FeedbackHandler:    NewFeedbackHandler(base, container.FeedbackService),
	}
}
