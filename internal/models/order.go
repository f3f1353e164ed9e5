package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

type Order struct {
	BaseModel
	UserID          string          `gorm:"not null;index" json:"user_id"`
	OrderNumber     string          `gorm:"uniqueIndex;not null" json:"order_number"`
	Status          OrderStatus     `gorm:"type:varchar(20);default:'pending'" json:"status"`
	Subtotal        decimal.Decimal `gorm:"type:decimal(10,2)" json:"subtotal"`
	Shipping        decimal.Decimal `gorm:"type:decimal(10,2)" json:"shipping"`
	Tax             decimal.Decimal `gorm:"type:decimal(10,2)" json:"tax"`
	Discount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"discount"`
	Total           decimal.Decimal `gorm:"type:decimal(10,2)" json:"total"`
	PaymentMethod   string          `gorm:"not null" json:"payment_method"`
	ShippingAddress datatypes.JSON  `json:"shipping_address"`

	Items []OrderItem `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE" json:"items,omitempty"`
}

// OrderItem snapshots the product name and price at purchase time, so later
// catalog edits never alter historical orders.
type OrderItem struct {
	BaseModel
	OrderID     string          `gorm:"not null;index" json:"order_id"`
	ProductID   string          `gorm:"not null" json:"product_id"`
	ProductName string          `gorm:"not null" json:"product_name"`
	Price       decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	Quantity    int             `gorm:"not null" json:"quantity"`
}
