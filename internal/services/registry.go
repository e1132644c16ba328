package services

import "collabhub_backend/internal/repositories"

// ServiceContainer wires repositories into services once, at startup.
type ServiceContainer struct {
	ApplicationService *ApplicationService
	FeedbackService    *FeedbackService
}

func NewServiceContainer() *ServiceContainer {
	appRepo := repositories.NewApplicationRepository()
	reqRepo := repositories.NewRequirementRepository()
	ratingRepo := repositories.NewRatingRepository()
	reviewRepo := repositories.NewReviewRepository()
	userRepo := repositories.NewUserRepository()

	applicationService := NewApplicationService(appRepo, reqRepo)

	return &ServiceContainer{
		ApplicationService: applicationService,
		// The feedback gate derives its authorization from application
		// history, never from stored relationship rows.
		FeedbackService: NewFeedbackService(ratingRepo, reviewRepo, userRepo, applicationService),
	}
}
