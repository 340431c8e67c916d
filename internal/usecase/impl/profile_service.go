package impl

import (
	"context"
	"log/slog"

	deliverycontext "courier/internal/delivery/context"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/errors"
	"courier/internal/usecase"

	"go.uber.org/fx"
)

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager   repository.TransactionManager
	accountRepo repository.AccountRepository
	logger      *slog.Logger
}

// ProfileServiceParams holds dependencies for profileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Logger      *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		txManager:   params.TxManager,
		accountRepo: params.AccountRepo,
		logger:      params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfileImage returns the stored image payload; empty when never set.
func (srv *profileService) GetProfileImage(ctx context.Context, accountID int64) (string, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return "", domainerrors.ErrAccountNotFound.WrapMessage("profile image lookup failed")
		}

		return "", errors.Wrap(err, "failed to find account by id")
	}

	return account.ProfileImage, nil
}

// SetProfileImage stores the base64 payload on the account. The payload is
// opaque to the server; only non-emptiness is enforced.
func (srv *profileService) SetProfileImage(ctx context.Context, accountID int64, image string) error {
	if image == "" {
		return domainerrors.ErrProfileImageRequired.WrapMessage("empty image payload")
	}

	return srv.updateImage(ctx, accountID, image)
}

// ClearProfileImage removes the stored image payload.
func (srv *profileService) ClearProfileImage(ctx context.Context, accountID int64) error {
	return srv.updateImage(ctx, accountID, "")
}

func (srv *profileService) updateImage(ctx context.Context, accountID int64, image string) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		account, findErr := accountRepo.FindByID(ctx, accountID)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return domainerrors.ErrAccountNotFound.WrapMessage("profile image update failed")
			}

			return errors.Wrap(findErr, "failed to find account by id")
		}

		account.ProfileImage = image

		return accountRepo.Update(ctx, account)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to update profile image", slog.Int64("accountID", accountID), slog.Any("error", err))

		return err
	}

	return nil
}
