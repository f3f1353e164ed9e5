package repositories

import (
	"errors"

	"shophub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrOrderNotFound = errors.New("order not found")

type OrderRepository interface {
	Create(db *gorm.DB, order *models.Order) error
	CreateItem(db *gorm.DB, item *models.OrderItem) error
	FindByUser(db *gorm.DB, userID string, status models.OrderStatus) ([]models.Order, error)
	FindByIDForUser(db *gorm.DB, orderID, userID string) (*models.Order, error)
	UpdateStatus(db *gorm.DB, orderID string, status models.OrderStatus) error
}

type OrderRepositoryImpl struct{}

func NewOrderRepository() OrderRepository {
	return &OrderRepositoryImpl{}
}

func (r *OrderRepositoryImpl) Create(db *gorm.DB, order *models.Order) error {
	return db.Create(order).Error
}

func (r *OrderRepositoryImpl) CreateItem(db *gorm.DB, item *models.OrderItem) error {
	return db.Create(item).Error
}

func (r *OrderRepositoryImpl) FindByUser(db *gorm.DB, userID string, status models.OrderStatus) ([]models.Order, error) {
	query := db.Preload("Items").Where("user_id = ?", userID)
	if status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	err := query.Order("created_at DESC").Find(&orders).Error
	return orders, err
}

// FindByIDForUser scopes the lookup to the owner, so one user can never read
// another user's order.
func (r *OrderRepositoryImpl) FindByIDForUser(db *gorm.DB, orderID, userID string) (*models.Order, error) {
	var order models.Order
	err := db.Preload("Items").
		First(&order, "id = ? AND user_id = ?", orderID, userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, err
	}
	return &order, nil
}

func (r *OrderRepositoryImpl) UpdateStatus(db *gorm.DB, orderID string, status models.OrderStatus) error {
	result := db.Model(&models.Order{}).Where("id = ?", orderID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrOrderNotFound
	}
	return nil
}
