package impl

import (
	"context"
	"log/slog"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/usecase"

	"go.uber.org/fx"
)

// packageService implements the PackageUsecase interface.
type packageService struct {
	txManager   repository.TransactionManager
	packageRepo repository.PackageRepository
	logger      *slog.Logger
}

// PackageServiceParams holds dependencies for packageService, injected by Fx.
type PackageServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	PackageRepo repository.PackageRepository
	Logger      *slog.Logger
}

// NewPackageService is the constructor for packageService.
func NewPackageService(params PackageServiceParams) usecase.PackageUsecase {
	return &packageService{
		txManager:   params.TxManager,
		packageRepo: params.PackageRepo,
		logger:      params.Logger,
	}
}

func (srv *packageService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreatePackage records a new delivery in the pending state.
func (srv *packageService) CreatePackage(ctx context.Context, input *usecase.CreatePackageInput) (*entity.Package, error) {
	if input.Weight <= 0 {
		return nil, domainerrors.ErrInvalidPackageWeight.WrapMessage("package creation failed")
	}

	pkg := &entity.Package{
		Address: input.Address,
		Owner:   input.Owner,
		Weight:  input.Weight,
		Status:  entity.PackageStatusPending,
		Date:    input.Date,
	}

	if err := srv.packageRepo.Create(ctx, pkg); err != nil {
		srv.log(ctx).Error("Failed to create package", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to create package")
	}

	srv.log(ctx).Debug("Package created", slog.Int64("packageID", pkg.ID))

	return pkg, nil
}

// GetPackage loads a single delivery record by ID.
func (srv *packageService) GetPackage(ctx context.Context, packageID int64) (*entity.Package, error) {
	pkg, err := srv.packageRepo.FindByID(ctx, packageID)
	if err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return nil, domainerrors.ErrPackageNotFound.WrapMessage("package lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find package by id")
	}

	return pkg, nil
}

// ListPackages returns all delivery records, newest first.
func (srv *packageService) ListPackages(ctx context.Context) ([]*entity.Package, error) {
	pkgs, err := srv.packageRepo.List(ctx)
	if err != nil {
		srv.log(ctx).Error("Failed to list packages", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list packages")
	}

	return pkgs, nil
}

// UpdatePackageStatus moves a package to the target delivery state inside a
// transaction, so two concurrent transitions cannot both leave pending.
func (srv *packageService) UpdatePackageStatus(ctx context.Context, packageID int64, status entity.PackageStatus) (*entity.Package, error) {
	if !status.IsValid() {
		return nil, domainerrors.ErrInvalidPackageStatus.WrapMessage("status update failed")
	}

	var updated *entity.Package
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		packageRepo := repoFactory.PackageRepo()

		pkg, findErr := packageRepo.FindByID(ctx, packageID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrPackageNotFound) {
				return domainerrors.ErrPackageNotFound.WrapMessage("status update failed")
			}

			return errors.Wrap(findErr, "failed to find package by id")
		}

		if !pkg.CanTransitionTo(status) {
			return domainerrors.ErrPackageStatusFinal.WrapMessage("package cannot leave its current state")
		}

		pkg.Status = status
		updated = pkg

		return packageRepo.Update(ctx, pkg)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update package status", slog.Int64("packageID", packageID), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Package status updated", slog.Int64("packageID", packageID), slog.String("status", string(status)))

	return updated, nil
}

// DeletePackage removes a delivery record by ID.
func (srv *packageService) DeletePackage(ctx context.Context, packageID int64) error {
	srv.log(ctx).Info("Deleting package", slog.Int64("packageID", packageID))

	if err := srv.packageRepo.Delete(ctx, packageID); err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return domainerrors.ErrPackageNotFound.WrapMessage("package deletion failed")
		}

		return errors.Wrap(err, "failed to delete package")
	}

	return nil
}
