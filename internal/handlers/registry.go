package handlers

// AppHandlers holds every handler the router wires up.
type AppHandlers struct {
	AuthHandler    *AuthHandler
	ProfileHandler *ProfileHandler
	ProductHandler *ProductHandler
	CartHandler    *CartHandler
	OrderHandler   *OrderHandler
	PaymentHandler *PaymentHandler
}
