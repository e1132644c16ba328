package models

// Rating is a directional 1-5 score. The unique index on
// (from_user_id, to_user_id) pins exactly one row per ordered pair;
// resubmission overwrites the score through an upsert.
type Rating struct {
	BaseModel
	FromUserID string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_from_to" json:"fromUserId"`
	ToUserID   string `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_from_to;index" json:"toUserId"`
	Score      int    `gorm:"not null;check:score >= 1 AND score <= 5" json:"score"`

	FromUser User `gorm:"foreignKey:FromUserID" json:"-"`
	ToUser   User `gorm:"foreignKey:ToUserID" json:"-"`
}

// Review is directional free-text feedback. Append-only: no uniqueness
// constraint, a user may leave several reviews for the same target.
type Review struct {
	BaseModel
	FromUserID string `gorm:"type:uuid;not null;index" json:"fromUserId"`
	ToUserID   string `gorm:"type:uuid;not null;index" json:"toUserId"`
	Content    string `gorm:"not null" json:"content"`

	FromUser User `gorm:"foreignKey:FromUserID" json:"-"`
	ToUser   User `gorm:"foreignKey:ToUserID" json:"-"`
}
