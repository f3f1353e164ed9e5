package services

import (
	"shophub_backend/internal/models"
	"shophub_backend/internal/repositories"
	"shophub_backend/internal/services/dto"
	"shophub_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CartService interface {
	GetCart(db *gorm.DB, userID string) (*dto.CartResponse, error)
	AddItem(db *gorm.DB, userID string, req *dto.AddToCartRequest) error
	UpdateItem(db *gorm.DB, userID, itemID string, quantity int) error
	RemoveItem(db *gorm.DB, userID, itemID string) error
	Clear(db *gorm.DB, userID string) error
}

type CartServiceImpl struct {
	cartRepo    repositories.CartRepository
	productRepo repositories.ProductRepository
}

func NewCartService(cartRepo repositories.CartRepository, productRepo repositories.ProductRepository) CartService {
	return &CartServiceImpl{
		cartRepo:    cartRepo,
		productRepo: productRepo,
	}
}

func (s *CartServiceImpl) GetCart(db *gorm.DB, userID string) (*dto.CartResponse, error) {
	items, err := s.cartRepo.FindByUser(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	response := &dto.CartResponse{
		Items: make([]dto.CartLineResponse, 0, len(items)),
		Total: decimal.Zero,
	}

	for _, item := range items {
		if item.Product == nil {
			continue
		}
		response.Items = append(response.Items, dto.CartLineResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Name:      item.Product.Name,
			Price:     item.Product.Price,
			Quantity:  item.Quantity,
			Stock:     item.Product.Stock,
			ImageURL:  item.Product.ImageURL,
			Category:  item.Product.Category,
		})
		lineTotal := item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		response.Total = response.Total.Add(lineTotal)
	}

	return response, nil
}

// AddItem puts a product in the cart, merging quantities when the line
// already exists. This is the only place stock availability is checked; the
// check can be stale by checkout time.
func (s *CartServiceImpl) AddItem(db *gorm.DB, userID string, req *dto.AddToCartRequest) error {
	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	product, err := s.productRepo.FindByID(db, req.ProductID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrNotFound(err, "product", "Product not found")
		}
		return apperrors.InternalError(err)
	}

	if product.Stock < quantity {
		return apperrors.ErrInsufficientStock
	}

	existing, err := s.cartRepo.FindLine(db, userID, req.ProductID)
	if err != nil && !apperrors.Is(err, repositories.ErrCartItemNotFound) {
		return apperrors.InternalError(err)
	}

	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if newQuantity > product.Stock {
			return apperrors.ErrInsufficientStock
		}
		if err := s.cartRepo.UpdateQuantity(db, existing.ID, userID, newQuantity); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	}

	item := &models.CartItem{
		UserID:    userID,
		ProductID: req.ProductID,
		Quantity:  quantity,
	}
	if err := s.cartRepo.Create(db, item); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CartServiceImpl) UpdateItem(db *gorm.DB, userID, itemID string, quantity int) error {
	if quantity < 1 {
		return apperrors.NewBadRequestError("Quantity must be at least 1")
	}

	if err := s.cartRepo.UpdateQuantity(db, itemID, userID, quantity); err != nil {
		if apperrors.Is(err, repositories.ErrCartItemNotFound) {
			return apperrors.ErrNotFound(err, "cart", "Cart item not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CartServiceImpl) RemoveItem(db *gorm.DB, userID, itemID string) error {
	if err := s.cartRepo.Delete(db, itemID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrCartItemNotFound) {
			return apperrors.ErrNotFound(err, "cart", "Cart item not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *CartServiceImpl) Clear(db *gorm.DB, userID string) error {
	if err := s.cartRepo.ClearForUser(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}
