package email

import (
	"fmt"

	"jobboard_backend/internal/config"

	"gopkg.in/gomail.v2"
)

// SMTPProvider sends mail through the configured SMTP relay.
type SMTPProvider struct {
	cfg       *config.Config
	templates *TemplateManager
	dialer    *gomail.Dialer
}

func NewSMTPProvider(cfg *config.Config) (*SMTPProvider, error) {
	if cfg.Email.SMTPHost == "" || cfg.Email.FromEmail == "" {
		return nil, fmt.Errorf("smtp host and from address must be configured")
	}

	tm, err := NewTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("failed to create template manager: %w", err)
	}

	return &SMTPProvider{
		cfg:       cfg,
		templates: tm,
		dialer: gomail.NewDialer(
			cfg.Email.SMTPHost,
			cfg.Email.SMTPPort,
			cfg.Email.SMTPUsername,
			cfg.Email.SMTPPassword,
		),
	}, nil
}

func (p *SMTPProvider) SendVerification(to, token string) error {
	data := TemplateData{
		Subject:    "Verify your email",
		ActionURL:  fmt.Sprintf("%s/api/v1/auth/verify-email?token=%s", p.cfg.Email.BaseURL, token),
		ActionText: "Verify Email",
	}
	return p.send(to, TemplateEmailVerification, data)
}

func (p *SMTPProvider) SendPasswordReset(to, token string) error {
	data := TemplateData{
		Subject:    "Password reset",
		ActionURL:  fmt.Sprintf("%s/password-reset?token=%s", p.cfg.Email.BaseURL, token),
		ActionText: "Reset Password",
	}
	return p.send(to, TemplatePasswordReset, data)
}

func (p *SMTPProvider) SendApplicationSubmitted(to, jobTitle string) error {
	data := TemplateData{
		Subject:  "Application Submitted Successfully",
		JobTitle: jobTitle,
	}
	return p.send(to, TemplateApplicationSubmitted, data)
}

func (p *SMTPProvider) SendApplicationAccepted(to, jobTitle string) error {
	data := TemplateData{
		Subject:  "Congratulations! Your Application Has Been Accepted",
		JobTitle: jobTitle,
	}
	return p.send(to, TemplateApplicationAccepted, data)
}

func (p *SMTPProvider) Close() error {
	return nil
}

func (p *SMTPProvider) send(to string, kind TemplateKind, data TemplateData) error {
	body, err := p.templates.Render(kind, data)
	if err != nil {
		return fmt.Errorf("failed to render template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.Email.FromEmail, p.cfg.Email.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", data.Subject)
	m.SetBody("text/html", body)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("send email: %w", err)
	}
	return nil
}
