// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"courier/internal/domain/entity"
)

// --- Input DTOs ---

// RegisterInput defines the data required to register a new account.
type RegisterInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
	IsAdmin  bool
}

// LoginInput defines the data required for an account to log in.
type LoginInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// RegisterOutput returns the newly created account.
type RegisterOutput struct {
	Account *entity.Account
}

// LoginOutput returns the signed session token after a successful login.
type LoginOutput struct {
	Token   string
	Account *entity.Account
}

// AccountUsecase defines the interface for account-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AccountUsecase interface {
	Register(ctx context.Context, input *RegisterInput) (*RegisterOutput, error)
	Login(ctx context.Context, input *LoginInput) (*LoginOutput, error)
	GetAccount(ctx context.Context, accountID int64) (*entity.Account, error)

	// Admin operations over non-admin accounts.
	ListAccounts(ctx context.Context) ([]*entity.Account, error)
	DeleteAccount(ctx context.Context, accountID int64) error
}
