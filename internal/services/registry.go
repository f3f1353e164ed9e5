package services

import "shophub_backend/internal/email"

// ServiceContainer holds every service the handlers depend on.
type ServiceContainer struct {
	AuthService    AuthService
	UserService    UserService
	ProductService ProductService
	CartService    CartService
	OrderService   OrderService
	PaymentService PaymentService
	EmailProvider  email.Provider
}
