package models

// CreatorProfile holds the public identity of a content creator.
// Only the fields consumed by display-name resolution and partner
// listings live here; the full profile CRUD is a separate surface.
type CreatorProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	DisplayName string `json:"displayName"`
	Bio         string `json:"bio"`
	Niche       string `gorm:"index" json:"niche"`
	Followers   int    `gorm:"default:0" json:"followers"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}

type BrandProfile struct {
	BaseModel
	UserID      string `gorm:"type:uuid;uniqueIndex;not null" json:"userId"`
	CompanyName string `json:"companyName"`
	Website     string `json:"website"`
	Industry    string `json:"industry"`

	User User `gorm:"foreignKey:UserID" json:"-"`
}
