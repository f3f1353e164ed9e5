package email

import (
	"crypto/tls"
	"fmt"

	gomail "gopkg.in/gomail.v2"
)

// SMTPProvider delivers mail over SMTP with STARTTLS.
type SMTPProvider struct {
	config    *SMTPConfig
	templates *TemplateManager
	dialer    *gomail.Dialer
	resetURL  string
}

// NewSMTPProvider builds the provider. resetBaseURL is the frontend origin
// the reset link points at.
func NewSMTPProvider(config *SMTPConfig, resetBaseURL string) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, err
	}

	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if config.UseTLS {
		dialer.TLSConfig = &tls.Config{ServerName: config.Host}
	}

	return &SMTPProvider{
		config:    config,
		templates: tm,
		dialer:    dialer,
		resetURL:  resetBaseURL,
	}, nil
}

func (p *SMTPProvider) Send(email *Email) error {
	if len(email.To) == 0 {
		return fmt.Errorf("no recipients specified")
	}

	m := gomail.NewMessage()
	from := email.From
	if from == "" {
		from = m.FormatAddress(p.config.FromEmail, p.config.FromName)
	}
	m.SetHeader("From", from)
	m.SetHeader("To", email.To...)
	m.SetHeader("Subject", email.Subject)

	if email.Body != "" {
		m.SetBody("text/plain", email.Body)
		if email.HTMLBody != "" {
			m.AddAlternative("text/html", email.HTMLBody)
		}
	} else {
		m.SetBody("text/html", email.HTMLBody)
	}

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

func (p *SMTPProvider) SendVerificationCode(to, code string) error {
	htmlBody, err := p.templates.Render("verification", TemplateData{
		Code:        code,
		CompanyName: p.config.FromName,
	})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("%s - Email Verification Code", p.config.FromName),
		Body:     fmt.Sprintf("Your verification code is: %s\n\nThis code will expire in 5 minutes.", code),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	resetLink := fmt.Sprintf("%s/reset-password.html?token=%s", p.resetURL, token)

	htmlBody, err := p.templates.Render("password_reset", TemplateData{
		ActionURL:   resetLink,
		ActionText:  "Reset Password",
		CompanyName: p.config.FromName,
	})
	if err != nil {
		return err
	}

	return p.Send(&Email{
		To:       []string{to},
		Subject:  fmt.Sprintf("%s - Password Reset Request", p.config.FromName),
		Body:     fmt.Sprintf("Click this link to reset your password:\n%s\n\nThis link will expire in 1 hour.", resetLink),
		HTMLBody: htmlBody,
	})
}

func (p *SMTPProvider) Validate() error {
	return p.config.Validate()
}
