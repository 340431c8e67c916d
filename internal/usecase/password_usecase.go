package usecase

import "context"

// ForgotPasswordInput identifies the account requesting a reset link.
type ForgotPasswordInput struct {
	Email string
}

// ResetPasswordInput carries the emailed reset token and the replacement password.
type ResetPasswordInput struct {
	Token       string
	NewPassword string
}

// PasswordUsecase defines the password-reset business operations.
type PasswordUsecase interface {
	// ForgotPassword mints a single-use reset token, stores it on the account
	// and emails a reset link to the account's address.
	ForgotPassword(ctx context.Context, input *ForgotPasswordInput) error

	// ResetPassword consumes a reset token and replaces the account password,
	// keeping the account's original salt.
	ResetPassword(ctx context.Context, input *ResetPasswordInput) error
}
