package email

import "fmt"

// Provider is the outbound mail transport. Send failures come back as errors;
// callers decide whether they are reportable.
type Provider interface {
	Send(email *Email) error

	// SendPasswordReset mails the reset link carrying the plaintext token.
	SendPasswordReset(to, resetLink string) error

	Close() error
}

const passwordResetSubject = "Password Reset Request"

func passwordResetBody(resetLink string) string {
	return fmt.Sprintf(
		"You requested a password reset. Click the link below to reset your password:\n%s\n\n"+
			"This link will expire in 1 hour.\n\n"+
			"If you did not request this, please ignore this email.\n",
		resetLink,
	)
}
