package usecase

import (
	"context"
	"time"

	"courier/internal/domain/entity"
)

// CreatePackageInput defines the data required to create a delivery record.
type CreatePackageInput struct {
	Address string
	Owner   string
	Weight  int
	Date    time.Time
}

// PackageUsecase defines the business operations on delivery records.
type PackageUsecase interface {
	CreatePackage(ctx context.Context, input *CreatePackageInput) (*entity.Package, error)
	GetPackage(ctx context.Context, packageID int64) (*entity.Package, error)
	ListPackages(ctx context.Context) ([]*entity.Package, error)

	// UpdatePackageStatus moves a package to the target delivery state.
	// Delivered and cancelled are terminal.
	UpdatePackageStatus(ctx context.Context, packageID int64, status entity.PackageStatus) (*entity.Package, error)

	DeletePackage(ctx context.Context, packageID int64) error
}
