package services

import (
	"testing"

	"shophub_backend/internal/config"
	"shophub_backend/internal/email"
	"shophub_backend/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB opens a fresh in-memory sqlite database per test.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// One connection, or each pooled connection sees its own empty :memory: db.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Product{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	))

	return db
}

func setupTestConfig(t *testing.T) {
	t.Helper()
	prev := config.AppConfig
	cfg := &config.Config{}
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 24
	cfg.Pagination.PerPage = 12
	cfg.Pagination.MaxPerPage = 100
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func createTestUser(t *testing.T, db *gorm.DB, emailAddr string) *models.User {
	t.Helper()
	user := &models.User{
		FullName:     "Test User",
		Email:        emailAddr,
		Mobile:       "+77001234567",
		PasswordHash: "irrelevant",
		Role:         models.UserRoleCustomer,
		IsActive:     true,
		IsVerified:   true,
	}
	require.NoError(t, db.Create(user).Error)
	return user
}

func createTestProduct(t *testing.T, db *gorm.DB, name string, price string, stock int) *models.Product {
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

// mockEmailProvider records outgoing mail instead of sending it.
type mockEmailProvider struct {
	sentCodes  map[string]string
	sentTokens map[string]string
	failNext   bool
}

func newMockEmailProvider() *mockEmailProvider {
	return &mockEmailProvider{
		sentCodes:  make(map[string]string),
		sentTokens: make(map[string]string),
	}
}

func (m *mockEmailProvider) Send(msg *email.Email) error { return nil }

func (m *mockEmailProvider) SendVerificationCode(to, code string) error {
	if m.failNext {
		m.failNext = false
		return errSMTPDown
	}
	m.sentCodes[to] = code
	return nil
}

func (m *mockEmailProvider) SendPasswordReset(to, token string) error {
	if m.failNext {
		m.failNext = false
		return errSMTPDown
	}
	m.sentTokens[to] = token
	return nil
}

func (m *mockEmailProvider) Validate() error { return nil }

var errSMTPDown = &smtpDownError{}

type smtpDownError struct{}

func (e *smtpDownError) Error() string { return "smtp connection refused" }
