package dto

import "github.com/shopspring/decimal"

type ListProductsQuery struct {
	Page     int    `form:"page"`
	PerPage  int    `form:"per_page"`
	Category string `form:"category"`
	Search   string `form:"search"`
	Sort     string `form:"sort"`
	Order    string `form:"order"`
}

type Pagination struct {
	Page    int   `json:"page"`
	PerPage int   `json:"per_page"`
	Total   int64 `json:"total"`
	Pages   int64 `json:"pages"`
}

type CreateProductRequest struct {
	Name        string          `json:"name" binding:"required" validate:"required"`
	Description string          `json:"description"`
	Category    string          `json:"category" binding:"required" validate:"required"`
	Price       decimal.Decimal `json:"price" validate:"required"`
	Stock       int             `json:"stock" validate:"gte=0"`
	ImageURL    string          `json:"image_url" validate:"omitempty,url"`
}

// UpdateProductRequest: nil fields are left unchanged.
type UpdateProductRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Category    *string          `json:"category"`
	Price       *decimal.Decimal `json:"price"`
	Stock       *int             `json:"stock" validate:"omitempty,gte=0"`
	ImageURL    *string          `json:"image_url" validate:"omitempty,url"`
}
