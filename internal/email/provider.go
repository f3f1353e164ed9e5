package email

// Provider is the outbound email boundary. A send failure must surface as an
// error to the caller so it can be reported and retried, never swallowed.
type Provider interface {
	// Send delivers a prepared message.
	Send(email *Email) error

	// SendVerificationCode delivers the 6-digit email confirmation code.
	SendVerificationCode(to, code string) error

	// SendPasswordReset delivers the password reset link for the token.
	SendPasswordReset(to, token string) error

	// Validate checks the provider configuration.
	Validate() error
}
