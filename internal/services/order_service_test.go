package services

import (
	"testing"

	"shophub_backend/internal/models"
	"shophub_backend/internal/repositories"
	"shophub_backend/internal/services/dto"
	"shophub_backend/pkg/apperrors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOrderService() OrderService {
	return NewOrderService(
		repositories.NewOrderRepository(),
		repositories.NewProductRepository(),
		repositories.NewCartRepository(),
	)
}

func checkoutRequestFor(products []*models.Product, quantities []int) *dto.CheckoutRequest {
	req := &dto.CheckoutRequest{
		PaymentMethod: "card",
		ShippingAddress: dto.ShippingAddress{
			FullName:     "Test User",
			AddressLine1: "1 Main St",
			City:         "Almaty",
			Country:      "KZ",
		},
	}

	subtotal := decimal.Zero
	for i, p := range products {
		req.Items = append(req.Items, dto.CheckoutItem{
			ProductID: p.ID,
			Name:      p.Name,
			Quantity:  quantities[i],
			Price:     p.Price,
		})
		subtotal = subtotal.Add(p.Price.Mul(decimal.NewFromInt(int64(quantities[i]))))
	}
	req.Subtotal = subtotal
	req.Shipping = decimal.RequireFromString("10.00")
	req.Tax = subtotal.Mul(decimal.RequireFromString("0.1"))
	req.Total = req.Subtotal.Add(req.Shipping).Add(req.Tax)
	return req
}

func TestCheckout_Success(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")
	laptop := createTestProduct(t, db, "Laptop", "999.99", 10)
	mouse := createTestProduct(t, db, "Mouse", "25.50", 5)

	// Cart rows that must be wiped by checkout.
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: laptop.ID, Quantity: 2}).Error)
	require.NoError(t, db.Create(&models.CartItem{UserID: user.ID, ProductID: mouse.ID, Quantity: 1}).Error)

	req := checkoutRequestFor([]*models.Product{laptop, mouse}, []int{2, 1})

	res, err := svc.Checkout(db, user.ID, req)
	require.NoError(t, err)
	require.NotEmpty(t, res.OrderID)
	assert.Regexp(t, `^ORD-\d{8}-[A-Z0-9]{6}$`, res.OrderNumber)

	var order models.Order
	require.NoError(t, db.Preload("Items").First(&order, "id = ?", res.OrderID).Error)
	assert.Equal(t, models.OrderStatusPending, order.Status)
	assert.Equal(t, user.ID, order.UserID)
	assert.True(t, order.Total.Equal(req.Total), "stored total %s, want %s", order.Total, req.Total)
	assert.True(t, order.Subtotal.Equal(req.Subtotal))
	require.Len(t, order.Items, 2)

	itemsByProduct := map[string]models.OrderItem{}
	for _, item := range order.Items {
		itemsByProduct[item.ProductID] = item
	}
	assert.Equal(t, "Laptop", itemsByProduct[laptop.ID].ProductName)
	assert.Equal(t, 2, itemsByProduct[laptop.ID].Quantity)
	assert.True(t, itemsByProduct[laptop.ID].Price.Equal(laptop.Price))
	assert.Equal(t, 1, itemsByProduct[mouse.ID].Quantity)

	var laptopRow, mouseRow models.Product
	require.NoError(t, db.First(&laptopRow, "id = ?", laptop.ID).Error)
	require.NoError(t, db.First(&mouseRow, "id = ?", mouse.ID).Error)
	assert.Equal(t, 8, laptopRow.Stock)
	assert.Equal(t, 4, mouseRow.Stock)

	var cartCount int64
	require.NoError(t, db.Model(&models.CartItem{}).Where("user_id = ?", user.ID).Count(&cartCount).Error)
	assert.Zero(t, cartCount)
}

func TestCheckout_SnapshotSurvivesCatalogEdit(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")
	product := createTestProduct(t, db, "Keyboard", "49.99", 10)

	req := checkoutRequestFor([]*models.Product{product}, []int{1})
	res, err := svc.Checkout(db, user.ID, req)
	require.NoError(t, err)

	// Rename and reprice the product after the sale.
	require.NoError(t, db.Model(&models.Product{}).Where("id = ?", product.ID).
		Updates(map[string]interface{}{"name": "Keyboard v2", "price": "89.99"}).Error)

	order, err := svc.Get(db, user.ID, res.OrderID)
	require.NoError(t, err)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Keyboard", order.Items[0].ProductName)
	assert.True(t, order.Items[0].Price.Equal(decimal.RequireFromString("49.99")))
}

func TestCheckout_EmptyItems(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")

	_, err := svc.Checkout(db, user.ID, &dto.CheckoutRequest{PaymentMethod: "card"})
	require.Error(t, err)

	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 400, appErr.HTTPCode)

	var orderCount int64
	require.NoError(t, db.Model(&models.Order{}).Count(&orderCount).Error)
	assert.Zero(t, orderCount)
}

func TestCheckout_StockCanGoNegative(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")
	product := createTestProduct(t, db, "Last Unit", "10.00", 1)

	req := checkoutRequestFor([]*models.Product{product}, []int{3})
	_, err := svc.Checkout(db, user.ID, req)
	require.NoError(t, err)

	var row models.Product
	require.NoError(t, db.First(&row, "id = ?", product.ID).Error)
	assert.Equal(t, -2, row.Stock)
}

func TestListOrders(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")
	other := createTestUser(t, db, "other@test.com")
	product := createTestProduct(t, db, "Widget", "5.00", 100)

	for i := 0; i < 2; i++ {
		_, err := svc.Checkout(db, user.ID, checkoutRequestFor([]*models.Product{product}, []int{1}))
		require.NoError(t, err)
	}
	_, err := svc.Checkout(db, other.ID, checkoutRequestFor([]*models.Product{product}, []int{1}))
	require.NoError(t, err)

	orders, err := svc.List(db, user.ID, &dto.ListOrdersQuery{})
	require.NoError(t, err)
	assert.Len(t, orders, 2)

	pending, err := svc.List(db, user.ID, &dto.ListOrdersQuery{Status: "pending"})
	require.NoError(t, err)
	assert.Len(t, pending, 2)

	cancelled, err := svc.List(db, user.ID, &dto.ListOrdersQuery{Status: "cancelled"})
	require.NoError(t, err)
	assert.Empty(t, cancelled)
}

func TestGetOrder_OwnerScoped(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	owner := createTestUser(t, db, "owner@test.com")
	stranger := createTestUser(t, db, "stranger@test.com")
	product := createTestProduct(t, db, "Widget", "5.00", 100)

	res, err := svc.Checkout(db, owner.ID, checkoutRequestFor([]*models.Product{product}, []int{1}))
	require.NoError(t, err)

	_, err = svc.Get(db, owner.ID, res.OrderID)
	require.NoError(t, err)

	_, err = svc.Get(db, stranger.ID, res.OrderID)
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}

func TestCancelOrder(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")
	product := createTestProduct(t, db, "Widget", "5.00", 100)

	res, err := svc.Checkout(db, user.ID, checkoutRequestFor([]*models.Product{product}, []int{1}))
	require.NoError(t, err)

	require.NoError(t, svc.Cancel(db, user.ID, res.OrderID))

	var order models.Order
	require.NoError(t, db.First(&order, "id = ?", res.OrderID).Error)
	assert.Equal(t, models.OrderStatusCancelled, order.Status)

	// Cancelled is terminal; a second cancel is rejected.
	err = svc.Cancel(db, user.ID, res.OrderID)
	require.Error(t, err)
}

func TestCancelOrder_FromProcessing(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")
	product := createTestProduct(t, db, "Widget", "5.00", 100)

	res, err := svc.Checkout(db, user.ID, checkoutRequestFor([]*models.Product{product}, []int{1}))
	require.NoError(t, err)

	require.NoError(t, db.Model(&models.Order{}).Where("id = ?", res.OrderID).
		Update("status", models.OrderStatusProcessing).Error)

	assert.NoError(t, svc.Cancel(db, user.ID, res.OrderID))
}

func TestCancelOrder_RejectedStates(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")
	product := createTestProduct(t, db, "Widget", "5.00", 100)

	for _, status := range []models.OrderStatus{models.OrderStatusShipped, models.OrderStatusDelivered} {
		res, err := svc.Checkout(db, user.ID, checkoutRequestFor([]*models.Product{product}, []int{1}))
		require.NoError(t, err)

		require.NoError(t, db.Model(&models.Order{}).Where("id = ?", res.OrderID).
			Update("status", status).Error)

		err = svc.Cancel(db, user.ID, res.OrderID)
		require.Error(t, err, "cancel from %s must fail", status)

		var order models.Order
		require.NoError(t, db.First(&order, "id = ?", res.OrderID).Error)
		assert.Equal(t, status, order.Status, "status must not change on rejected cancel")
	}
}

func TestCancelOrder_NotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newOrderService()

	user := createTestUser(t, db, "buyer@test.com")

	err := svc.Cancel(db, user.ID, "missing-order-id")
	require.Error(t, err)
	var appErr *apperrors.AppError
	require.True(t, apperrors.As(err, &appErr))
	assert.Equal(t, 404, appErr.HTTPCode)
}
