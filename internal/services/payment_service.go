package services

import (
	"fmt"
	"strings"

	"shophub_backend/internal/models"
	"shophub_backend/internal/repositories"
	"shophub_backend/internal/services/dto"
	"shophub_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PaymentService is a stub gateway: it records the payment and fabricates a
// transaction id without talking to a real processor.
type PaymentService interface {
	Process(db *gorm.DB, userID string, req *dto.ProcessPaymentRequest) (*dto.ProcessPaymentResponse, error)
	Verify(db *gorm.DB, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error)
}

type PaymentServiceImpl struct {
	paymentRepo repositories.PaymentRepository
	orderRepo   repositories.OrderRepository
}

func NewPaymentService(paymentRepo repositories.PaymentRepository, orderRepo repositories.OrderRepository) PaymentService {
	return &PaymentServiceImpl{
		paymentRepo: paymentRepo,
		orderRepo:   orderRepo,
	}
}

func (s *PaymentServiceImpl) Process(db *gorm.DB, userID string, req *dto.ProcessPaymentRequest) (*dto.ProcessPaymentResponse, error) {
	order, err := s.orderRepo.FindByIDForUser(db, req.OrderID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err, "order", "Order not found")
		}
		return nil, apperrors.InternalError(err)
	}

	amount := req.Amount
	if amount.IsZero() {
		amount = order.Total
	}

	payment := &models.Payment{
		OrderID:       order.ID,
		Amount:        amount,
		Method:        req.PaymentMethod,
		Status:        models.PaymentStatusPaid,
		TransactionID: newTransactionID(),
	}
	if err := s.paymentRepo.Create(db, payment); err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.orderRepo.UpdateStatus(db, order.ID, models.OrderStatusProcessing); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.ProcessPaymentResponse{TransactionID: payment.TransactionID}, nil
}

func (s *PaymentServiceImpl) Verify(db *gorm.DB, req *dto.VerifyPaymentRequest) (*dto.VerifyPaymentResponse, error) {
	payment, err := s.paymentRepo.FindByTransactionID(db, req.TransactionID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrPaymentNotFound) {
			return nil, apperrors.ErrNotFound(err, "payment", "Payment not found")
		}
		return nil, apperrors.InternalError(err)
	}

	return &dto.VerifyPaymentResponse{
		Status:        string(payment.Status),
		TransactionID: payment.TransactionID,
	}, nil
}

func newTransactionID() string {
	return fmt.Sprintf("TXN-%s", strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:16])
}
