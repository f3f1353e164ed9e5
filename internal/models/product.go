package models

import "github.com/shopspring/decimal"

type Product struct {
	BaseModel
	Name        string          `gorm:"not null;index" json:"name"`
	Description string          `json:"description"`
	Category    string          `gorm:"index" json:"category"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Stock       int             `gorm:"not null;default:0" json:"stock"`
	ImageURL    string          `json:"image_url"`
	IsActive    bool            `gorm:"default:true" json:"is_active"`
}
