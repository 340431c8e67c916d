package impl

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/usecase"
)

func newPackageService(packageRepo *fakePackageRepo) usecase.PackageUsecase {
	return NewPackageService(PackageServiceParams{
		TxManager:   &fakeTxManager{packageRepo: packageRepo},
		PackageRepo: packageRepo,
		Logger:      testLogger(),
	})
}

func TestCreatePackage(t *testing.T) {
	packageRepo := &fakePackageRepo{
		CreateFunc: func(_ context.Context, pkg *entity.Package) error {
			pkg.ID = 1

			return nil
		},
	}
	svc := newPackageService(packageRepo)

	pkg, err := svc.CreatePackage(context.Background(), &usecase.CreatePackageInput{
		Address: "1 Main St",
		Owner:   "Ada",
		Weight:  500,
		Date:    time.Now(),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), pkg.ID)
	assert.Equal(t, entity.PackageStatusPending, pkg.Status, "new packages always start pending")
}

func TestCreatePackageRejectsNonPositiveWeight(t *testing.T) {
	svc := newPackageService(&fakePackageRepo{})

	for _, weight := range []int{0, -1} {
		_, err := svc.CreatePackage(context.Background(), &usecase.CreatePackageInput{
			Address: "1 Main St",
			Owner:   "Ada",
			Weight:  weight,
		})
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidPackageWeight))
	}
}

func TestUpdatePackageStatus(t *testing.T) {
	stored := &entity.Package{ID: 1, Status: entity.PackageStatusPending}
	packageRepo := &fakePackageRepo{
		FindByIDFunc: func(_ context.Context, _ int64) (*entity.Package, error) {
			return stored, nil
		},
	}
	svc := newPackageService(packageRepo)

	pkg, err := svc.UpdatePackageStatus(context.Background(), 1, entity.PackageStatusDelivered)
	require.NoError(t, err)
	assert.Equal(t, entity.PackageStatusDelivered, pkg.Status)
}

func TestUpdatePackageStatusRejectsUnknownStatus(t *testing.T) {
	svc := newPackageService(&fakePackageRepo{})

	_, err := svc.UpdatePackageStatus(context.Background(), 1, entity.PackageStatus("lost"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidPackageStatus))
}

func TestUpdatePackageStatusRejectsTerminalStates(t *testing.T) {
	for _, current := range []entity.PackageStatus{entity.PackageStatusDelivered, entity.PackageStatusCancelled} {
		stored := &entity.Package{ID: 1, Status: current}
		packageRepo := &fakePackageRepo{
			FindByIDFunc: func(_ context.Context, _ int64) (*entity.Package, error) {
				return stored, nil
			},
		}
		svc := newPackageService(packageRepo)

		_, err := svc.UpdatePackageStatus(context.Background(), 1, entity.PackageStatusCancelled)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrPackageStatusFinal))
	}
}

func TestUpdatePackageStatusUnknownPackage(t *testing.T) {
	svc := newPackageService(&fakePackageRepo{})

	_, err := svc.UpdatePackageStatus(context.Background(), 99, entity.PackageStatusDelivered)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPackageNotFound))
}

func TestListPackages(t *testing.T) {
	packageRepo := &fakePackageRepo{
		ListFunc: func(_ context.Context) ([]*entity.Package, error) {
			return []*entity.Package{{ID: 2}, {ID: 1}}, nil
		},
	}
	svc := newPackageService(packageRepo)

	pkgs, err := svc.ListPackages(context.Background())
	require.NoError(t, err)
	assert.Len(t, pkgs, 2)
}

func TestDeletePackageUnknown(t *testing.T) {
	packageRepo := &fakePackageRepo{
		DeleteFunc: func(_ context.Context, _ int64) error {
			return repository.ErrPackageNotFound
		},
	}
	svc := newPackageService(packageRepo)

	err := svc.DeletePackage(context.Background(), 99)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPackageNotFound))
}
