package dto

import (
	"time"

	"collabhub_backend/internal/models"
)

type CreateRatingRequest struct {
	ToUserID string `json:"toUserId" validate:"required,uuid"`
	Score    int    `json:"score" validate:"required,min=1,max=5"`
}

type CreateReviewRequest struct {
	ToUserID string `json:"toUserId" validate:"required,uuid"`
	Content  string `json:"content" validate:"required,max=5000"`
}

type RatingListResponse struct {
	Ratings     []models.Rating `json:"ratings"`
	AvgRating   float64         `json:"avgRating"`
	RatingCount int64           `json:"ratingCount"`
}

type ReviewResponse struct {
	ID           string    `json:"id"`
	FromUserID   string    `json:"fromUserId"`
	ToUserID     string    `json:"toUserId"`
	Content      string    `json:"content"`
	CreatedAt    time.Time `json:"createdAt"`
	ReviewerName string    `json:"reviewerName"`
	// Rating is the reviewer's current score for the same pair, 0 when
	// none is recorded.
	Rating int `json:"rating"`
}
