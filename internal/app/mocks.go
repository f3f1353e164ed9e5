package app

import "shophub_backend/internal/email"

// MockEmailProvider is used for tests and local development when SMTP is not
// configured.
type MockEmailProvider struct{}

func (m *MockEmailProvider) Send(msg *email.Email) error                { return nil }
func (m *MockEmailProvider) SendVerificationCode(to, code string) error { return nil }
func (m *MockEmailProvider) SendPasswordReset(to, token string) error   { return nil }
func (m *MockEmailProvider) Validate() error                            { return nil }
