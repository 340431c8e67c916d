// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"courier/internal/domain/entity"
)

// ErrAccountNotFound is a domain-specific error returned when an account is not found.
var ErrAccountNotFound = errors.New("account not found")

// AccountRepository defines the standard operations for account persistence.
// The application layer depends on this interface, not the concrete implementation.
type AccountRepository interface {
	// FindByID retrieves a single account by its primary key.
	FindByID(ctx context.Context, id int64) (*entity.Account, error)

	// FindByEmail retrieves a single account by its unique email address.
	FindByEmail(ctx context.Context, email string) (*entity.Account, error)

	// FindByResetToken retrieves the account whose stored reset-password token
	// equals the given token. A consumed token never matches because the
	// column is cleared on successful reset.
	FindByResetToken(ctx context.Context, token string) (*entity.Account, error)

	// Create persists a new account. The entity's ID and timestamps are
	// populated from the generated row.
	Create(ctx context.Context, account *entity.Account) error

	// Update modifies an existing account.
	Update(ctx context.Context, account *entity.Account) error

	// Delete removes an account by its primary key.
	Delete(ctx context.Context, id int64) error

	// ListNonAdmins returns non-admin accounts, newest first, capped at limit.
	ListNonAdmins(ctx context.Context, limit int) ([]*entity.Account, error)
}
