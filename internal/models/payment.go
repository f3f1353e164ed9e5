package models

import "github.com/shopspring/decimal"

type Payment struct {
	BaseModel
	OrderID       string          `gorm:"not null;index" json:"order_id"`
	Amount        decimal.Decimal `gorm:"type:decimal(10,2)" json:"amount"`
	Method        string          `json:"method"`
	Status        PaymentStatus   `gorm:"type:varchar(20);default:'pending'" json:"status"`
	TransactionID string          `json:"transaction_id"`
}
