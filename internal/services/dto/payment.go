package dto

import "github.com/shopspring/decimal"

type ProcessPaymentRequest struct {
	OrderID       string          `json:"order_id" binding:"required" validate:"required"`
	PaymentMethod string          `json:"payment_method" validate:"required,is-payment-method"`
	Amount        decimal.Decimal `json:"amount"`
}

type ProcessPaymentResponse struct {
	TransactionID string `json:"transaction_id"`
}

type VerifyPaymentRequest struct {
	TransactionID string `json:"transaction_id" binding:"required" validate:"required"`
}

type VerifyPaymentResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
}
