package apperrors

import "net/http"

// Factories and predefined variables for common business errors.

// ErrNotFound converts a repository miss (e.g. gorm.ErrRecordNotFound) into a 404.
func ErrNotFound(err error, domain, message string) *AppError {
	return Wrap(err, CodeNotFound, domain, message, http.StatusNotFound)
}

// ErrAlreadyExists converts a uniqueness violation into a 409.
func ErrAlreadyExists(err error, domain, message string) *AppError {
	return Wrap(err, CodeAlreadyExists, domain, message, http.StatusConflict)
}

// ErrConflict is the generic 409 factory.
func ErrConflict(err error, domain, message string) *AppError {
	return Wrap(err, CodeConflict, domain, message, http.StatusConflict)
}

// ErrInvalidStatus rejects an operation not allowed in the entity's current state.
func ErrInvalidStatus(domain, message string) *AppError {
	return New(CodeInvalidStatus, domain, message, http.StatusBadRequest)
}

// ErrInvalidOperation is the generic 400 factory for business rules.
func ErrInvalidOperation(domain, message string) *AppError {
	return New(CodeInvalidOperation, domain, message, http.StatusBadRequest)
}

// --- Predefined static errors ---

var ErrInvalidCredentials = New(
	CodeInvalidCredentials,
	"auth",
	"Invalid email or password",
	http.StatusUnauthorized,
)

var ErrInvalidToken = New(
	CodeInvalidToken,
	"auth",
	"Invalid or expired token",
	http.StatusUnauthorized,
)

var ErrAccountDeactivated = New(
	CodeForbidden,
	"auth",
	"Account is deactivated",
	http.StatusUnauthorized,
)

var ErrEmailAlreadyExists = New(
	CodeAlreadyExists,
	"user",
	"Email already registered",
	http.StatusConflict,
)

var ErrInsufficientStock = New(
	CodeConflict,
	"product",
	"Insufficient stock",
	http.StatusConflict,
)

// ErrEmailSendFailed surfaces a transport failure to the caller so it can
// retry, instead of silently pretending the message went out.
var ErrEmailSendFailed = New(
	CodeExternalServiceError,
	"email",
	"Failed to send email",
	http.StatusInternalServerError,
)
