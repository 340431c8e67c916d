package service

import "context"

// Mailer defines the outbound email notifications the account flows produce.
// Sends are best-effort from the caller's point of view: a failed welcome
// email never rolls back the committed account.
type Mailer interface {
	// SendWelcome greets a freshly registered account.
	SendWelcome(ctx context.Context, to, name string) error

	// SendPasswordReset delivers the reset link containing the reset token.
	SendPasswordReset(ctx context.Context, to, name, resetURL string) error

	// SendPasswordResetConfirmation confirms a completed password change.
	SendPasswordResetConfirmation(ctx context.Context, to, name string) error
}
