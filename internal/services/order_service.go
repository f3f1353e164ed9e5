package services

import (
	"encoding/json"

	"shophub_backend/internal/logger"
	"shophub_backend/internal/models"
	"shophub_backend/internal/repositories"
	"shophub_backend/internal/services/dto"
	"shophub_backend/internal/utils"
	"shophub_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type OrderService interface {
	Checkout(db *gorm.DB, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error)
	List(db *gorm.DB, userID string, query *dto.ListOrdersQuery) ([]models.Order, error)
	Get(db *gorm.DB, userID, orderID string) (*models.Order, error)
	Cancel(db *gorm.DB, userID, orderID string) error
}

type OrderServiceImpl struct {
	orderRepo   repositories.OrderRepository
	productRepo repositories.ProductRepository
	cartRepo    repositories.CartRepository
}

func NewOrderService(
	orderRepo repositories.OrderRepository,
	productRepo repositories.ProductRepository,
	cartRepo repositories.CartRepository,
) OrderService {
	return &OrderServiceImpl{
		orderRepo:   orderRepo,
		productRepo: productRepo,
		cartRepo:    cartRepo,
	}
}

// Checkout turns the submitted cart lines into an order inside one
// transaction: the order row, a snapshot row per line, the stock decrements
// and the cart wipe all land together or not at all. Totals and line prices
// come from the client; stock is decremented without a re-check, so it can go
// negative under concurrent checkouts.
func (s *OrderServiceImpl) Checkout(db *gorm.DB, userID string, req *dto.CheckoutRequest) (*dto.CheckoutResponse, error) {
	if len(req.Items) == 0 {
		return nil, apperrors.NewBadRequestError("Order must contain at least one item")
	}

	addressJSON, err := json.Marshal(req.ShippingAddress)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	order := &models.Order{
		UserID:          userID,
		OrderNumber:     utils.GenerateOrderNumber(),
		Status:          models.OrderStatusPending,
		Subtotal:        req.Subtotal,
		Shipping:        req.Shipping,
		Tax:             req.Tax,
		Discount:        req.Discount,
		Total:           req.Total,
		PaymentMethod:   req.PaymentMethod,
		ShippingAddress: datatypes.JSON(addressJSON),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.orderRepo.Create(tx, order); err != nil {
			return err
		}

		for _, line := range req.Items {
			item := &models.OrderItem{
				OrderID:     order.ID,
				ProductID:   line.ProductID,
				ProductName: line.Name,
				Price:       line.Price,
				Quantity:    line.Quantity,
			}
			if err := s.orderRepo.CreateItem(tx, item); err != nil {
				return err
			}
			if err := s.productRepo.DecrementStock(tx, line.ProductID, line.Quantity); err != nil {
				return err
			}
		}

		return s.cartRepo.ClearForUser(tx, userID)
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	logger.Info("order placed",
		"order_id", order.ID,
		"order_number", order.OrderNumber,
		"user_id", userID,
		"items", len(req.Items),
	)

	return &dto.CheckoutResponse{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
	}, nil
}

func (s *OrderServiceImpl) List(db *gorm.DB, userID string, query *dto.ListOrdersQuery) ([]models.Order, error) {
	orders, err := s.orderRepo.FindByUser(db, userID, models.OrderStatus(query.Status))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return orders, nil
}

func (s *OrderServiceImpl) Get(db *gorm.DB, userID, orderID string) (*models.Order, error) {
	order, err := s.orderRepo.FindByIDForUser(db, orderID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return nil, apperrors.ErrNotFound(err, "order", "Order not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return order, nil
}

// Cancel moves an order to cancelled. Only pending and processing orders
// qualify; shipped and delivered ones are past the point of no return, and a
// cancelled order stays cancelled.
func (s *OrderServiceImpl) Cancel(db *gorm.DB, userID, orderID string) error {
	order, err := s.orderRepo.FindByIDForUser(db, orderID, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrOrderNotFound) {
			return apperrors.ErrNotFound(err, "order", "Order not found")
		}
		return apperrors.InternalError(err)
	}

	if !models.CancellableOrderStatuses[order.Status] {
		return apperrors.ErrInvalidStatus("order", "Order can no longer be cancelled")
	}

	if err := s.orderRepo.UpdateStatus(db, orderID, models.OrderStatusCancelled); err != nil {
		return apperrors.InternalError(err)
	}

	logger.Info("order cancelled", "order_id", orderID, "user_id", userID)
	return nil
}
