package repositories

import (
	"errors"

	"shophub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPaymentNotFound = errors.New("payment not found")

type PaymentRepository interface {
	Create(db *gorm.DB, payment *models.Payment) error
	FindByTransactionID(db *gorm.DB, transactionID string) (*models.Payment, error)
	UpdateStatus(db *gorm.DB, paymentID string, status models.PaymentStatus) error
}

type PaymentRepositoryImpl struct{}

func NewPaymentRepository() PaymentRepository {
	return &PaymentRepositoryImpl{}
}

func (r *PaymentRepositoryImpl) Create(db *gorm.DB, payment *models.Payment) error {
	return db.Create(payment).Error
}

func (r *PaymentRepositoryImpl) FindByTransactionID(db *gorm.DB, transactionID string) (*models.Payment, error) {
	var payment models.Payment
	err := db.First(&payment, "transaction_id = ?", transactionID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPaymentNotFound
		}
		return nil, err
	}
	return &payment, nil
}

func (r *PaymentRepositoryImpl) UpdateStatus(db *gorm.DB, paymentID string, status models.PaymentStatus) error {
	result := db.Model(&models.Payment{}).Where("id = ?", paymentID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPaymentNotFound
	}
	return nil
}
