package repositories

import (
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"collabhub_backend/internal/models"
)

// RatingAggregate is the computed summary for a feedback target.
type RatingAggregate struct {
	AvgScore    float64 `json:"avgScore"`
	RatingCount int64   `json:"ratingCount"`
}

// ReviewWithAuthor carries one review plus the raw name fields of its
// author; the service resolves the display name from them.
type ReviewWithAuthor struct {
	ID                  string    `json:"id"`
	FromUserID          string    `json:"fromUserId"`
	ToUserID            string    `json:"toUserId"`
	Content             string    `json:"content"`
	CreatedAt           time.Time `json:"createdAt"`
	ReviewerFirstName   string    `json:"-"`
	ReviewerLastName    string    `json:"-"`
	ReviewerCreatorName string    `json:"-"`
	ReviewerBrandName   string    `json:"-"`
	RatingScore         *int      `json:"-"`
}

type RatingRepository interface {
	// Upsert writes the score atomically: insert, or overwrite the
	// existing (from, to) row via a native ON CONFLICT update. No
	// select-then-branch, so concurrent submissions cannot duplicate.
	Upsert(db *gorm.DB, rating *models.Rating) error
	FindByPair(db *gorm.DB, fromUserID, toUserID string) (*models.Rating, error)
	ListByTarget(db *gorm.DB, toUserID string) ([]models.Rating, error)
	AggregateForTarget(db *gorm.DB, toUserID string) (*RatingAggregate, error)
}

type RatingRepositoryImpl struct{}

func NewRatingRepository() RatingRepository {
	return &RatingRepositoryImpl{}
}

func (r *RatingRepositoryImpl) Upsert(db *gorm.DB, rating *models.Rating) error {
	return db.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "from_user_id"}, {Name: "to_user_id"}},
		DoUpdates: clause.Assignments(map[string]interface{}{
			"score":      rating.Score,
			"updated_at": time.Now(),
		}),
	}).Create(rating).Error
}

func (r *RatingRepositoryImpl) FindByPair(db *gorm.DB, fromUserID, toUserID string) (*models.Rating, error) {
	var rating models.Rating
	err := db.First(&rating, "from_user_id = ? AND to_user_id = ?", fromUserID, toUserID).Error
	if err != nil {
		return nil, err
	}
	return &rating, nil
}

func (r *RatingRepositoryImpl) ListByTarget(db *gorm.DB, toUserID string) ([]models.Rating, error) {
	var ratings []models.Rating
	err := db.Where("to_user_id = ?", toUserID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

func (r *RatingRepositoryImpl) AggregateForTarget(db *gorm.DB, toUserID string) (*RatingAggregate, error) {
	var agg RatingAggregate
	err := db.Model(&models.Rating{}).
		Select("COALESCE(AVG(score), 0) AS avg_score, COUNT(id) AS rating_count").
		Where("to_user_id = ?", toUserID).
		Scan(&agg).Error
	if err != nil {
		return nil, err
	}
	return &agg, nil
}

type ReviewRepository interface {
	Create(db *gorm.DB, review *models.Review) error
	ListByTarget(db *gorm.DB, toUserID string) ([]ReviewWithAuthor, error)
}

type ReviewRepositoryImpl struct{}

func NewReviewRepository() ReviewRepository {
	return &ReviewRepositoryImpl{}
}

func (r *ReviewRepositoryImpl) Create(db *gorm.DB, review *models.Review) error {
	return db.Create(review).Error
}

func (r *ReviewRepositoryImpl) ListByTarget(db *gorm.DB, toUserID string) ([]ReviewWithAuthor, error) {
	var rows []ReviewWithAuthor
	err := db.Table("reviews").
		Select(`reviews.id, reviews.from_user_id, reviews.to_user_id,
			reviews.content, reviews.created_at,
			COALESCE(users.first_name, '') AS reviewer_first_name,
			COALESCE(users.last_name, '') AS reviewer_last_name,
			COALESCE(creator_profiles.display_name, '') AS reviewer_creator_name,
			COALESCE(brand_profiles.company_name, '') AS reviewer_brand_name,
			ratings.score AS rating_score`).
		Joins("JOIN users ON users.id = reviews.from_user_id").
		Joins("LEFT JOIN creator_profiles ON creator_profiles.user_id = reviews.from_user_id").
		Joins("LEFT JOIN brand_profiles ON brand_profiles.user_id = reviews.from_user_id").
		Joins("LEFT JOIN ratings ON ratings.from_user_id = reviews.from_user_id AND ratings.to_user_id = reviews.to_user_id").
		Where("reviews.to_user_id = ?", toUserID).
		Order("reviews.created_at DESC").
		Scan(&rows).Error
	return rows, err
}
