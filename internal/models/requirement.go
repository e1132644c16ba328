package models

import "gorm.io/datatypes"

// Requirement is a brand's posted campaign brief that creators apply to.
// The application subsystem only reads it (owner + status + display
// fields); posting and editing requirements is handled elsewhere.
type Requirement struct {
	BaseModel
	BrandID           string            `gorm:"type:uuid;not null;index" json:"brandId"`
	Title             string            `gorm:"size:300;not null" json:"title"`
	Description       string            `json:"description"`
	Niches            datatypes.JSON    `json:"niches"`
	MinFollowers      int               `gorm:"default:0" json:"minFollowers"`
	MinEngagementRate float64           `gorm:"default:0" json:"minEngagementRate"`
	BudgetMin         *int              `json:"budgetMin"`
	BudgetMax         *int              `json:"budgetMax"`
	Status            RequirementStatus `gorm:"type:varchar(20);default:'open';not null" json:"status"`

	Brand User `gorm:"foreignKey:BrandID" json:"-"`
}
