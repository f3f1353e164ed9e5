package services

import (
	"shophub_backend/internal/config"
	"shophub_backend/internal/models"
	"shophub_backend/internal/repositories"
	"shophub_backend/internal/services/dto"
	"shophub_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ProductService interface {
	List(db *gorm.DB, query *dto.ListProductsQuery) ([]models.Product, *dto.Pagination, error)
	Get(db *gorm.DB, productID string) (*models.Product, error)
	Featured(db *gorm.DB, limit int) ([]models.Product, error)
	Categories(db *gorm.DB) ([]repositories.CategoryCount, error)
	Create(db *gorm.DB, req *dto.CreateProductRequest) (*models.Product, error)
	Update(db *gorm.DB, productID string, req *dto.UpdateProductRequest) error
	Delete(db *gorm.DB, productID string) error
}

type ProductServiceImpl struct {
	productRepo repositories.ProductRepository
}

func NewProductService(productRepo repositories.ProductRepository) ProductService {
	return &ProductServiceImpl{productRepo: productRepo}
}

func (s *ProductServiceImpl) List(db *gorm.DB, query *dto.ListProductsQuery) ([]models.Product, *dto.Pagination, error) {
	cfg := config.GetConfig()

	page := query.Page
	if page < 1 {
		page = 1
	}
	perPage := query.PerPage
	if perPage < 1 {
		perPage = cfg.Pagination.PerPage
	}
	if perPage > cfg.Pagination.MaxPerPage {
		perPage = cfg.Pagination.MaxPerPage
	}

	products, total, err := s.productRepo.List(db, repositories.ProductFilter{
		Category: query.Category,
		Search:   query.Search,
		SortBy:   query.Sort,
		Order:    query.Order,
		Page:     page,
		PerPage:  perPage,
	})
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}

	pagination := &dto.Pagination{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   (total + int64(perPage) - 1) / int64(perPage),
	}
	return products, pagination, nil
}

func (s *ProductServiceImpl) Get(db *gorm.DB, productID string) (*models.Product, error) {
	product, err := s.productRepo.FindByID(db, productID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return nil, apperrors.ErrNotFound(err, "product", "Product not found")
		}
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) Featured(db *gorm.DB, limit int) ([]models.Product, error) {
	if limit < 1 || limit > 50 {
		limit = 8
	}
	products, err := s.productRepo.Featured(db, limit)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return products, nil
}

func (s *ProductServiceImpl) Categories(db *gorm.DB) ([]repositories.CategoryCount, error) {
	categories, err := s.productRepo.Categories(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return categories, nil
}

func (s *ProductServiceImpl) Create(db *gorm.DB, req *dto.CreateProductRequest) (*models.Product, error) {
	if req.Price.IsNegative() {
		return nil, apperrors.NewBadRequestError("Price cannot be negative")
	}

	product := &models.Product{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := s.productRepo.Create(db, product); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return product, nil
}

func (s *ProductServiceImpl) Update(db *gorm.DB, productID string, req *dto.UpdateProductRequest) error {
	fields := map[string]interface{}{}
	if req.Name != nil {
		fields["name"] = *req.Name
	}
	if req.Description != nil {
		fields["description"] = *req.Description
	}
	if req.Category != nil {
		fields["category"] = *req.Category
	}
	if req.Price != nil {
		if req.Price.LessThan(decimal.Zero) {
			return apperrors.NewBadRequestError("Price cannot be negative")
		}
		fields["price"] = *req.Price
	}
	if req.Stock != nil {
		fields["stock"] = *req.Stock
	}
	if req.ImageURL != nil {
		fields["image_url"] = *req.ImageURL
	}

	if len(fields) == 0 {
		return apperrors.NewBadRequestError("No fields to update")
	}

	if err := s.productRepo.UpdateFields(db, productID, fields); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrNotFound(err, "product", "Product not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ProductServiceImpl) Delete(db *gorm.DB, productID string) error {
	if err := s.productRepo.Deactivate(db, productID); err != nil {
		if apperrors.Is(err, repositories.ErrProductNotFound) {
			return apperrors.ErrNotFound(err, "product", "Product not found")
		}
		return apperrors.InternalError(err)
	}
	return nil
}
