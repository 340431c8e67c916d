package repository

import (
	"context"
	"errors"

	"courier/internal/domain/entity"
)

// ErrPackageNotFound is a domain-specific error returned when a package is not found.
var ErrPackageNotFound = errors.New("package not found")

// PackageRepository defines the standard operations for package persistence.
type PackageRepository interface {
	// FindByID retrieves a single package by its primary key.
	FindByID(ctx context.Context, id int64) (*entity.Package, error)

	// List returns all packages, newest first.
	List(ctx context.Context) ([]*entity.Package, error)

	// Create persists a new package record.
	Create(ctx context.Context, pkg *entity.Package) error

	// Update modifies an existing package record.
	Update(ctx context.Context, pkg *entity.Package) error

	// Delete removes a package by its primary key.
	Delete(ctx context.Context, id int64) error
}
