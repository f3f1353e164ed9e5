package repositories

import (
	"errors"

	"shophub_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProductNotFound = errors.New("product not found")

// ProductFilter drives the catalog listing. SortBy is validated against a
// whitelist before it reaches SQL.
type ProductFilter struct {
	Category string
	Search   string
	SortBy   string
	Order    string
	Page     int
	PerPage  int
}

type CategoryCount struct {
	Category string `json:"category"`
	Count    int64  `json:"count"`
}

type ProductRepository interface {
	FindByID(db *gorm.DB, id string) (*models.Product, error)
	List(db *gorm.DB, filter ProductFilter) ([]models.Product, int64, error)
	Featured(db *gorm.DB, limit int) ([]models.Product, error)
	Categories(db *gorm.DB) ([]CategoryCount, error)
	Create(db *gorm.DB, product *models.Product) error
	UpdateFields(db *gorm.DB, productID string, fields map[string]interface{}) error
	Deactivate(db *gorm.DB, productID string) error
	DecrementStock(db *gorm.DB, productID string, quantity int) error
}

type ProductRepositoryImpl struct{}

func NewProductRepository() ProductRepository {
	return &ProductRepositoryImpl{}
}

var allowedProductSorts = map[string]bool{
	"name":       true,
	"price":      true,
	"created_at": true,
}

func (r *ProductRepositoryImpl) FindByID(db *gorm.DB, id string) (*models.Product, error) {
	var product models.Product
	err := db.First(&product, "id = ? AND is_active = ?", id, true).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	return &product, nil
}

func (r *ProductRepositoryImpl) List(db *gorm.DB, filter ProductFilter) ([]models.Product, int64, error) {
	query := db.Model(&models.Product{}).Where("is_active = ?", true)

	if filter.Category != "" {
		query = query.Where("category = ?", filter.Category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("name LIKE ? OR description LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := filter.SortBy
	if !allowedProductSorts[sortBy] {
		sortBy = "created_at"
	}
	direction := "DESC"
	if filter.Order == "asc" || filter.Order == "ASC" {
		direction = "ASC"
	}

	offset := (filter.Page - 1) * filter.PerPage

	var products []models.Product
	err := query.Order(sortBy + " " + direction).
		Limit(filter.PerPage).Offset(offset).
		Find(&products).Error
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *ProductRepositoryImpl) Featured(db *gorm.DB, limit int) ([]models.Product, error) {
	var products []models.Product
	err := db.Where("is_active = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&products).Error
	return products, err
}

func (r *ProductRepositoryImpl) Categories(db *gorm.DB) ([]CategoryCount, error) {
	var categories []CategoryCount
	err := db.Model(&models.Product{}).
		Select("category, COUNT(*) as count").
		Where("is_active = ?", true).
		Group("category").
		Order("category").
		Scan(&categories).Error
	return categories, err
}

func (r *ProductRepositoryImpl) Create(db *gorm.DB, product *models.Product) error {
	return db.Create(product).Error
}

func (r *ProductRepositoryImpl) UpdateFields(db *gorm.DB, productID string, fields map[string]interface{}) error {
	result := db.Model(&models.Product{}).Where("id = ?", productID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// Deactivate soft-deletes: the row stays for historical order references.
func (r *ProductRepositoryImpl) Deactivate(db *gorm.DB, productID string) error {
	result := db.Model(&models.Product{}).Where("id = ?", productID).
		Update("is_active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProductNotFound
	}
	return nil
}

// DecrementStock subtracts the ordered quantity. There is deliberately no
// stock >= quantity guard here; the only availability check happens in the
// add-to-cart path, which can be stale by checkout time.
func (r *ProductRepositoryImpl) DecrementStock(db *gorm.DB, productID string, quantity int) error {
	return db.Model(&models.Product{}).Where("id = ?", productID).
		Update("stock", gorm.Expr("stock - ?", quantity)).Error
}
