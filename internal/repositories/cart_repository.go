package repositories

import (
	"errors"

	"shophub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrCartItemNotFound = errors.New("cart item not found")

type CartRepository interface {
	FindByUser(db *gorm.DB, userID string) ([]models.CartItem, error)
	FindLine(db *gorm.DB, userID, productID string) (*models.CartItem, error)
	Create(db *gorm.DB, item *models.CartItem) error
	UpdateQuantity(db *gorm.DB, itemID, userID string, quantity int) error
	Delete(db *gorm.DB, itemID, userID string) error
	ClearForUser(db *gorm.DB, userID string) error
}

type CartRepositoryImpl struct{}

func NewCartRepository() CartRepository {
	return &CartRepositoryImpl{}
}

func (r *CartRepositoryImpl) FindByUser(db *gorm.DB, userID string) ([]models.CartItem, error) {
	var items []models.CartItem
	err := db.Preload("Product").
		Joins("JOIN products ON products.id = cart_items.product_id AND products.is_active = ?", true).
		Where("cart_items.user_id = ?", userID).
		Find(&items).Error
	return items, err
}

func (r *CartRepositoryImpl) FindLine(db *gorm.DB, userID, productID string) (*models.CartItem, error) {
	var item models.CartItem
	err := db.First(&item, "user_id = ? AND product_id = ?", userID, productID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCartItemNotFound
		}
		return nil, err
	}
	return &item, nil
}

func (r *CartRepositoryImpl) Create(db *gorm.DB, item *models.CartItem) error {
	return db.Create(item).Error
}

func (r *CartRepositoryImpl) UpdateQuantity(db *gorm.DB, itemID, userID string, quantity int) error {
	result := db.Model(&models.CartItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("quantity", quantity)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepositoryImpl) Delete(db *gorm.DB, itemID, userID string) error {
	result := db.Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.CartItem{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCartItemNotFound
	}
	return nil
}

func (r *CartRepositoryImpl) ClearForUser(db *gorm.DB, userID string) error {
	return db.Where("user_id = ?", userID).Delete(&models.CartItem{}).Error
}
