package validator

import (
	"log"
	"regexp"

	"shophub_backend/internal/models"

	"github.com/go-playground/validator/v10"
)

var mobilePattern = regexp.MustCompile(`^\+?[0-9]{7,15}$`)

// registerCustomRules installs the project's custom validation tags. Empty
// values pass; 'required' owns presence checks.
func registerCustomRules(v *validator.Validate) {
	mustRegister := func(tag string, fn validator.Func) {
		if err := v.RegisterValidation(tag, fn); err != nil {
			log.Fatalf("failed to register custom validation tag '%s': %v", tag, err)
		}
	}

	mustRegister("mobile", validateMobile)
	mustRegister("is-payment-method", validatePaymentMethod)
	mustRegister("is-order-status", validateOrderStatus)
}

func validateMobile(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	return mobilePattern.MatchString(value)
}

func validatePaymentMethod(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch value {
	case "card", "paypal", "cod", "bank_transfer":
		return true
	default:
		return false
	}
}

func validateOrderStatus(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return true
	}
	switch models.OrderStatus(value) {
	case models.OrderStatusPending, models.OrderStatusProcessing, models.OrderStatusShipped,
		models.OrderStatusDelivered, models.OrderStatusCancelled:
		return true
	default:
		return false
	}
}
