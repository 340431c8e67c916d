package postgres

import (
	"context"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/infra/persistence/model"

	"courier/internal/errors"

	"gorm.io/gorm"
)

// packageRepository implements the domain.PackageRepository interface using GORM.
type packageRepository struct {
	db *gorm.DB
}

// NewPackageRepository is the constructor for packageRepository.
func NewPackageRepository(db *gorm.DB) repository.PackageRepository {
	return &packageRepository{db: db}
}

// FindByID retrieves a single package by its primary key.
func (repo *packageRepository) FindByID(ctx context.Context, id int64) (*entity.Package, error) {
	var pkgM model.PackageModel
	if err := repo.db.WithContext(ctx).First(&pkgM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrPackageNotFound
		}

		return nil, errors.Wrap(err, "failed to find package by id")
	}

	return toPackageDomain(&pkgM), nil
}

// List returns all packages, newest first.
func (repo *packageRepository) List(ctx context.Context) ([]*entity.Package, error) {
	var pkgMs []*model.PackageModel
	if err := repo.db.WithContext(ctx).Order("created_at DESC").Find(&pkgMs).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list packages")
	}

	pkgs := make([]*entity.Package, 0, len(pkgMs))
	for _, pkgM := range pkgMs {
		pkgs = append(pkgs, toPackageDomain(pkgM))
	}

	return pkgs, nil
}

// Create persists a new package and backfills the generated ID and timestamps.
func (repo *packageRepository) Create(ctx context.Context, pkg *entity.Package) error {
	pkgM := fromPackageDomain(pkg)

	if err := repo.db.WithContext(ctx).Create(pkgM).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required package information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create package")
	}

	pkg.ID = pkgM.ID
	pkg.CreatedAt = pkgM.CreatedAt
	pkg.UpdatedAt = pkgM.UpdatedAt

	return nil
}

// Update saves the full package row.
func (repo *packageRepository) Update(ctx context.Context, pkg *entity.Package) error {
	pkgM := fromPackageDomain(pkg)

	result := repo.db.WithContext(ctx).Save(pkgM)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update package")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	pkg.UpdatedAt = pkgM.UpdatedAt

	return nil
}

// Delete removes a package by its primary key.
func (repo *packageRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.PackageModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete package")
	}
	if result.RowsAffected == 0 {
		return repository.ErrPackageNotFound
	}

	return nil
}

func toPackageDomain(pkgM *model.PackageModel) *entity.Package {
	return &entity.Package{
		ID:        pkgM.ID,
		Address:   pkgM.Address,
		Owner:     pkgM.Owner,
		Weight:    pkgM.Weight,
		Status:    entity.PackageStatus(pkgM.Status),
		Date:      pkgM.Date,
		CreatedAt: pkgM.CreatedAt,
		UpdatedAt: pkgM.UpdatedAt,
	}
}

func fromPackageDomain(pkg *entity.Package) *model.PackageModel {
	return &model.PackageModel{
		ID:        pkg.ID,
		Address:   pkg.Address,
		Owner:     pkg.Owner,
		Weight:    pkg.Weight,
		Status:    string(pkg.Status),
		Date:      pkg.Date,
		CreatedAt: pkg.CreatedAt,
		UpdatedAt: pkg.UpdatedAt,
	}
}
