package email

import "github.com/sq23rd/roster-backend/internal/logger"

// LogProvider writes mail to the log instead of sending it. Used when no SMTP
// transport is configured, typically in development.
type LogProvider struct{}

func NewLogProvider() *LogProvider {
	return &LogProvider{}
}

func (p *LogProvider) Send(email *Email) error {
	logger.Info("mail (not sent, no SMTP transport configured)",
		"to", email.To,
		"subject", email.Subject,
	)
	return nil
}

func (p *LogProvider) SendPasswordReset(to, resetLink string) error {
	return p.Send(&Email{
		To:      []string{to},
		Subject: passwordResetSubject,
		Body:    passwordResetBody(resetLink),
	})
}

func (p *LogProvider) Close() error {
	return nil
}
