package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"shophub_backend/database"
	"shophub_backend/internal/config"
	"shophub_backend/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func setupTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 24
	cfg.Pagination.PerPage = 12
	cfg.Pagination.MaxPerPage = 100
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.AutoMigrate(db))

	return SetupRouter(cfg, db), db
}

func doRequest(t *testing.T, router *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func registerAndLogin(t *testing.T, router *gin.Engine, email string) string {
	t.Helper()

	rec := doRequest(t, router, "POST", "/api/v1/auth/register", "", map[string]interface{}{
		"full_name": "Test User",
		"email":     email,
		"mobile":    "+77001234567",
		"password":  "super_password123",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": "super_password123",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)
	return res.Token
}

func seedProduct(t *testing.T, db *gorm.DB, name, price string, stock int) *models.Product {
	t.Helper()
	product := &models.Product{
		Name:     name,
		Category: "electronics",
		Price:    decimal.RequireFromString(price),
		Stock:    stock,
		IsActive: true,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

func TestShoppingFlow(t *testing.T) {
	router, db := setupTestRouter(t)

	token := registerAndLogin(t, router, "shopper@test.com")
	product := seedProduct(t, db, "Laptop", "999.99", 10)

	// Catalog is public.
	rec := doRequest(t, router, "GET", "/api/v1/products", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Laptop")

	// Cart requires auth.
	rec = doRequest(t, router, "GET", "/api/v1/cart", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = doRequest(t, router, "POST", "/api/v1/cart/add", token, map[string]interface{}{
		"product_id": product.ID,
		"quantity":   2,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	rec = doRequest(t, router, "GET", "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "1999.98")

	rec = doRequest(t, router, "POST", "/api/v1/orders", token, map[string]interface{}{
		"items": []map[string]interface{}{
			{"id": product.ID, "name": "Laptop", "quantity": 2, "price": "999.99"},
		},
		"payment_method": "card",
		"subtotal":       "1999.98",
		"shipping":       "10.00",
		"tax":            "0.00",
		"discount":       "0.00",
		"total":          "2009.98",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var checkout struct {
		OrderID     string `json:"order_id"`
		OrderNumber string `json:"order_number"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &checkout))
	assert.Regexp(t, `^ORD-\d{8}-[A-Z0-9]{6}$`, checkout.OrderNumber)

	// Stock was decremented and the cart emptied.
	var row models.Product
	require.NoError(t, db.First(&row, "id = ?", product.ID).Error)
	assert.Equal(t, 8, row.Stock)

	rec = doRequest(t, router, "GET", "/api/v1/cart", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"cart":[]`)

	rec = doRequest(t, router, "GET", "/api/v1/orders", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), checkout.OrderNumber)

	rec = doRequest(t, router, "PUT", "/api/v1/orders/"+checkout.OrderID+"/cancel", token, nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// A second cancel is rejected.
	rec = doRequest(t, router, "PUT", "/api/v1/orders/"+checkout.OrderID+"/cancel", token, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckout_EmptyItemsRejected(t *testing.T) {
	router, _ := setupTestRouter(t)

	token := registerAndLogin(t, router, "shopper@test.com")

	rec := doRequest(t, router, "POST", "/api/v1/orders", token, map[string]interface{}{
		"items":          []map[string]interface{}{},
		"payment_method": "card",
	})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminRoutesRequireAdminRole(t *testing.T) {
	router, db := setupTestRouter(t)

	token := registerAndLogin(t, router, "customer@test.com")

	rec := doRequest(t, router, "POST", "/api/v1/products", token, map[string]interface{}{
		"name":     "New Product",
		"category": "electronics",
		"price":    "10.00",
	})
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// Promote the user and retry.
	require.NoError(t, db.Model(&models.User{}).
		Where("email = ?", "customer@test.com").
		Update("role", models.UserRoleAdmin).Error)
	adminToken := loginAs(t, router, "customer@test.com", "super_password123")

	rec = doRequest(t, router, "POST", "/api/v1/products", adminToken, map[string]interface{}{
		"name":     "New Product",
		"category": "electronics",
		"price":    "10.00",
	})
	assert.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
}

func loginAs(t *testing.T, router *gin.Engine, email, password string) string {
	t.Helper()
	rec := doRequest(t, router, "POST", "/api/v1/auth/login", "", map[string]interface{}{
		"email":    email,
		"password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	return res.Token
}

func TestProfileEndpoints(t *testing.T) {
	router, _ := setupTestRouter(t)

	token := registerAndLogin(t, router, "user@test.com")

	rec := doRequest(t, router, "GET", "/api/v1/profile", token, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "user@test.com")

	rec = doRequest(t, router, "PUT", "/api/v1/profile", token, map[string]interface{}{
		"full_name": "Updated Name",
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = doRequest(t, router, "GET", "/api/v1/profile", token, nil)
	assert.Contains(t, rec.Body.String(), "Updated Name")
}

func TestSeedFirstAdmin(t *testing.T) {
	_, db := setupTestRouter(t)

	cfg := config.AppConfig
	cfg.FirstAdminEmail = "admin@test.com"
	cfg.FirstAdminPassword = "admin_password123"

	require.NoError(t, seedFirstAdmin(db, cfg))

	var admin models.User
	require.NoError(t, db.First(&admin, "email = ?", "admin@test.com").Error)
	assert.Equal(t, models.UserRoleAdmin, admin.Role)
	assert.True(t, admin.IsVerified)

	// Idempotent on rerun.
	require.NoError(t, seedFirstAdmin(db, cfg))
	var count int64
	require.NoError(t, db.Model(&models.User{}).Where("email = ?", "admin@test.com").Count(&count).Error)
	assert.Equal(t, int64(1), count)
}
