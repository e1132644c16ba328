package services

import (
	"gorm.io/gorm"

	"collabhub_backend/internal/models"
	"collabhub_backend/internal/repositories"
	"collabhub_backend/internal/services/dto"
	"collabhub_backend/pkg/apperrors"
)

// RelationshipChecker is the authorization predicate the feedback gate
// consults before any rating or review write.
type RelationshipChecker interface {
	HasAcceptedRelationship(db *gorm.DB, userA, userB string) (bool, error)
}

// FeedbackService guards rating/review writes behind the accepted
// partnership predicate and serves the read-side aggregates.
type FeedbackService struct {
	ratingRepo    repositories.RatingRepository
	reviewRepo    repositories.ReviewRepository
	userRepo      repositories.UserRepository
	relationships RelationshipChecker
}

func NewFeedbackService(
	ratingRepo repositories.RatingRepository,
	reviewRepo repositories.ReviewRepository,
	userRepo repositories.UserRepository,
	relationships RelationshipChecker,
) *FeedbackService {
	return &FeedbackService{
		ratingRepo:    ratingRepo,
		reviewRepo:    reviewRepo,
		userRepo:      userRepo,
		relationships: relationships,
	}
}

// checkTarget verifies the feedback target exists before the
// relationship gate runs, so unknown ids surface as 404 rather than 403.
func (s *FeedbackService) checkTarget(db *gorm.DB, fromUserID, toUserID string) error {
	if _, err := s.userRepo.FindByID(db, toUserID); err != nil {
		if apperrors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrUserNotFound
		}
		return err
	}

	related, err := s.relationships.HasAcceptedRelationship(db, fromUserID, toUserID)
	if err != nil {
		return err
	}
	if !related {
		return apperrors.ErrNoAcceptedRelationship
	}
	return nil
}

// UpsertRating records a 1-5 score. The second submission for the same
// (from, to) pair overwrites the first; exactly one row exists per pair.
func (s *FeedbackService) UpsertRating(db *gorm.DB, fromUserID string, req *dto.CreateRatingRequest) (*models.Rating, error) {
	if fromUserID == req.ToUserID {
		return nil, apperrors.ErrSelfRating
	}
	if err := s.checkTarget(db, fromUserID, req.ToUserID); err != nil {
		return nil, err
	}

	rating := &models.Rating{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Score:      req.Score,
	}
	if err := s.ratingRepo.Upsert(db, rating); err != nil {
		return nil, err
	}

	// Re-read so the conflict path also returns the stored row.
	return s.ratingRepo.FindByPair(db, fromUserID, req.ToUserID)
}

// CreateReview appends a review; reviews are immutable and unbounded per
// pair.
func (s *FeedbackService) CreateReview(db *gorm.DB, fromUserID string, req *dto.CreateReviewRequest) (*models.Review, error) {
	if fromUserID == req.ToUserID {
		return nil, apperrors.ErrSelfReview
	}
	if err := s.checkTarget(db, fromUserID, req.ToUserID); err != nil {
		return nil, err
	}

	review := &models.Review{
		FromUserID: fromUserID,
		ToUserID:   req.ToUserID,
		Content:    req.Content,
	}
	if err := s.reviewRepo.Create(db, review); err != nil {
		return nil, err
	}
	return review, nil
}

func (s *FeedbackService) GetRatingsForUser(db *gorm.DB, userID string) (*dto.RatingListResponse, error) {
	ratings, err := s.ratingRepo.ListByTarget(db, userID)
	if err != nil {
		return nil, err
	}
	agg, err := s.ratingRepo.AggregateForTarget(db, userID)
	if err != nil {
		return nil, err
	}
	return &dto.RatingListResponse{
		Ratings:     ratings,
		AvgRating:   agg.AvgScore,
		RatingCount: agg.RatingCount,
	}, nil
}

// GetReviewsForUser returns reviews newest first, each annotated with
// the resolved reviewer name and the reviewer's current rating score for
// the same pair.
func (s *FeedbackService) GetReviewsForUser(db *gorm.DB, userID string) ([]dto.ReviewResponse, error) {
	rows, err := s.reviewRepo.ListByTarget(db, userID)
	if err != nil {
		return nil, err
	}

	reviews := make([]dto.ReviewResponse, 0, len(rows))
	for _, row := range rows {
		score := 0
		if row.RatingScore != nil {
			score = *row.RatingScore
		}
		reviews = append(reviews, dto.ReviewResponse{
			ID:         row.ID,
			FromUserID: row.FromUserID,
			ToUserID:   row.ToUserID,
			Content:    row.Content,
			CreatedAt:  row.CreatedAt,
			ReviewerName: resolveName(
				literal(row.ReviewerCreatorName),
				literal(row.ReviewerBrandName),
				fullName(row.ReviewerFirstName, row.ReviewerLastName),
				literal(row.FromUserID),
			),
			Rating: score,
		})
	}
	return reviews, nil
}
