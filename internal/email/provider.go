package email

import "resumebuilder_backend/internal/logger"

// Provider sends outbound mail. Fire-and-report: a failed send surfaces as an
// error to the caller, no retry happens here.
type Provider interface {
	// SendHTML sends an HTML email.
	SendHTML(to, subject, html string) error

	// SendVerification sends the account verification email with a link
	// built from the configured base URL.
	SendVerification(to, name, token string) error

	// SendWithAttachment sends a plain-text email with one attachment.
	SendWithAttachment(to, subject, body string, attachment []byte, filename string) error
}

// NoopProvider logs instead of sending. Used when SMTP is not configured
// (local development, tests).
type NoopProvider struct{}

func (p *NoopProvider) SendHTML(to, subject, _ string) error {
	logger.Warn("email sending disabled, dropping message", "to", to, "subject", subject)
	return nil
}

func (p *NoopProvider) SendVerification(to, _, token string) error {
	logger.Warn("email sending disabled, dropping verification", "to", to, "token", token)
	return nil
}

func (p *NoopProvider) SendWithAttachment(to, subject, _ string, _ []byte, filename string) error {
	logger.Warn("email sending disabled, dropping attachment message",
		"to", to, "subject", subject, "filename", filename)
	return nil
}
