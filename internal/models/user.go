package models

type User struct {
	BaseModel
	FullName     string   `gorm:"not null" json:"full_name"`
	Email        string   `gorm:"uniqueIndex;not null" json:"email"`
	Mobile       string   `json:"mobile"`
	PasswordHash string   `gorm:"not null" json:"-"`
	Role         UserRole `gorm:"type:varchar(20);default:'customer'" json:"role"`
	IsActive     bool     `gorm:"default:true" json:"is_active"`
	IsVerified   bool     `gorm:"default:false" json:"is_verified"`

	// Relations
	CartItems []CartItem `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
	Orders    []Order    `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE" json:"-"`
}
