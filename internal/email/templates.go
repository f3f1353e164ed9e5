package email

import (
	"bytes"
	"fmt"
	"html/template"
)

// Inline templates keep the binary self-contained; the rendered HTML mirrors
// the transactional mails the storefront sends.

const verificationTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: auto; background: #fff; border-radius: 10px; overflow: hidden;">
    <div style="background: #667eea; color: #fff; padding: 24px; text-align: center;">
      <h1 style="margin: 0;">{{.CompanyName}}</h1>
      <p>Email Verification</p>
    </div>
    <div style="padding: 32px;">
      <p>Thank you for registering with {{.CompanyName}}. Use the code below to verify your email address:</p>
      <div style="border: 2px dashed #667eea; border-radius: 8px; padding: 16px; text-align: center; margin: 24px 0;">
        <span style="font-size: 32px; font-weight: bold; letter-spacing: 8px; color: #667eea;">{{.Code}}</span>
        <p style="color: #999;">This code will expire in 5 minutes</p>
      </div>
      <p style="color: #856404; background: #fff3cd; padding: 12px;">
        If you didn't request this code, ignore this email. Never share this code with anyone.
      </p>
    </div>
  </div>
</body>
</html>`

const passwordResetTemplate = `<!DOCTYPE html>
<html>
<body style="font-family: sans-serif; background-color: #f4f4f4; padding: 20px;">
  <div style="max-width: 600px; margin: auto; background: #fff; border-radius: 10px; overflow: hidden;">
    <div style="background: #667eea; color: #fff; padding: 24px; text-align: center;">
      <h1 style="margin: 0;">{{.CompanyName}}</h1>
      <p>Password Reset Request</p>
    </div>
    <div style="padding: 32px;">
      <p>We received a request to reset your password. Click the button below to create a new one:</p>
      <div style="text-align: center; margin: 24px 0;">
        <a href="{{.ActionURL}}" style="background: #667eea; color: #fff; padding: 14px 36px; border-radius: 8px; text-decoration: none; font-weight: bold;">{{.ActionText}}</a>
      </div>
      <p>This link will expire in 1 hour.</p>
      <p style="color: #667eea; word-break: break-all;">{{.ActionURL}}</p>
      <p style="color: #856404; background: #fff3cd; padding: 12px;">
        If you didn't request a password reset, ignore this email. Your password will remain unchanged.
      </p>
    </div>
  </div>
</body>
</html>`

// TemplateManager renders the known templates by name.
type TemplateManager struct {
	templates map[string]*template.Template
}

func NewTemplateManager() (*TemplateManager, error) {
	sources := map[string]string{
		"verification":   verificationTemplate,
		"password_reset": passwordResetTemplate,
	}

	tm := &TemplateManager{templates: make(map[string]*template.Template, len(sources))}
	for name, src := range sources {
		t, err := template.New(name).Parse(src)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %q: %w", name, err)
		}
		tm.templates[name] = t
	}
	return tm, nil
}

func (tm *TemplateManager) Render(name string, data TemplateData) (string, error) {
	t, ok := tm.templates[name]
	if !ok {
		return "", fmt.Errorf("unknown template %q", name)
	}

	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render template %q: %w", name, err)
	}
	return buf.String(), nil
}
