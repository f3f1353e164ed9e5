package models

// CartItem is one (user, product) line. The pair is unique; adding the same
// product again merges quantities instead of creating a second row.
type CartItem struct {
	BaseModel
	UserID    string `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"user_id"`
	ProductID string `gorm:"not null;uniqueIndex:idx_cart_user_product" json:"product_id"`
	Quantity  int    `gorm:"not null" json:"quantity"`

	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}
