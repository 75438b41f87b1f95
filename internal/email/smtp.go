package email

import (
	"fmt"
	"io"

	"gopkg.in/gomail.v2"
)

// Config holds the SMTP settings plus the app base URL used to build
// verification links.
type Config struct {
	Host       string
	Port       int
	Username   string
	Password   string
	FromEmail  string
	FromName   string
	AppBaseURL string
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("SMTP host is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid SMTP port: %d", c.Port)
	}
	if c.FromEmail == "" {
		return fmt.Errorf("from email is required")
	}
	return nil
}

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	cfg    Config
	dialer *gomail.Dialer
}

func NewSMTPProvider(cfg Config) (*SMTPProvider, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
	}, nil
}

func (p *SMTPProvider) SendHTML(to, subject, html string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", html)

	return p.dialer.DialAndSend(m)
}

func (p *SMTPProvider) SendVerification(to, name, token string) error {
	link := fmt.Sprintf("%s/api/auth/verify-email?token=%s", p.cfg.AppBaseURL, token)

	html, err := RenderVerification(VerificationData{
		Name: name,
		Link: link,
	})
	if err != nil {
		return fmt.Errorf("failed to render verification template: %w", err)
	}

	return p.SendHTML(to, "Verify your email", html)
}

func (p *SMTPProvider) SendWithAttachment(to, subject, body string, attachment []byte, filename string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.cfg.FromEmail, p.cfg.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)
	m.Attach(filename, gomail.SetCopyFunc(func(w io.Writer) error {
		_, err := w.Write(attachment)
		return err
	}))

	return p.dialer.DialAndSend(m)
}
