package dto

import "github.com/shopspring/decimal"

type AddToCartRequest struct {
	ProductID string `json:"product_id" binding:"required" validate:"required"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required" validate:"required,min=1"`
}

type CartLineResponse struct {
	ID        string          `json:"id"`
	ProductID string          `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Quantity  int             `json:"quantity"`
	Stock     int             `json:"stock"`
	ImageURL  string          `json:"image_url"`
	Category  string          `json:"category"`
}

type CartResponse struct {
	Items []CartLineResponse `json:"cart"`
	Total decimal.Decimal    `json:"total"`
}
