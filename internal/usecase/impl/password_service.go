package impl

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"

	"courier/config"
	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"

	"go.uber.org/fx"
)

// passwordService implements the PasswordUsecase interface.
type passwordService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	resetBaseURL string
	logger       *slog.Logger
}

// PasswordServiceParams holds dependencies for passwordService, injected by Fx.
type PasswordServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Config       *config.Config
	Logger       *slog.Logger
}

// NewPasswordService is the constructor for passwordService.
func NewPasswordService(params PasswordServiceParams) usecase.PasswordUsecase {
	resetBaseURL := ""
	if params.Config != nil && params.Config.SMTP != nil {
		resetBaseURL = params.Config.SMTP.ResetBaseURL
	}

	return &passwordService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		resetBaseURL: resetBaseURL,
		logger:       params.Logger,
	}
}

func (srv *passwordService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ForgotPassword mints a reset token, stores it on the account and emails the
// reset link. Issuing a new token while one is pending replaces the old one,
// so only the most recent link works.
func (srv *passwordService) ForgotPassword(ctx context.Context, input *usecase.ForgotPasswordInput) error {
	srv.log(ctx).Info("Starting password reset request", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Password reset request failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("no account for this email")
		}

		return errors.Wrap(err, "failed to find account by email")
	}

	resetToken, err := srv.tokenService.IssueResetToken(account.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue reset token", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to issue reset token")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		stored, findErr := accountRepo.FindByID(ctx, account.ID)
		if findErr != nil {
			return errors.Wrap(findErr, "failed to reload account for reset request")
		}

		stored.ResetPasswordToken = resetToken

		return accountRepo.Update(ctx, stored)
	})
	if err != nil {
		srv.log(ctx).Error("Failed to store reset token", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to store reset token")
	}

	// The reset email is the whole point of this flow, so a send failure is an
	// error, not best-effort.
	if err := srv.mailer.SendPasswordReset(ctx, account.Email, account.Name, srv.buildResetURL(resetToken)); err != nil {
		srv.log(ctx).Error("Failed to send reset email", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return errors.Wrap(err, "failed to send reset email")
	}

	srv.log(ctx).Debug("Password reset link sent", slog.Int64("accountID", account.ID))

	return nil
}

// ResetPassword consumes a reset token and replaces the account's password,
// recomputing the hash under the account's original salt.
func (srv *passwordService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	srv.log(ctx).Info("Starting password reset")

	// Verify the signature first so a forged token never reaches the database.
	claims, err := srv.tokenService.VerifyResetToken(input.Token)
	if err != nil {
		srv.log(ctx).Warn("Password reset with invalid token", slog.Any("error", err))

		return domainerrors.ErrInvalidResetToken.WrapMessage("reset token verification failed")
	}

	if err := srv.hasher.ValidatePasswordStrength(input.NewPassword); err != nil {
		srv.log(ctx).Warn("Password validation failed during reset", slog.Int64("accountID", claims.AccountID), slog.Any("error", err))

		return err
	}

	var account *entity.Account
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Lookup by stored token: a consumed token was cleared and misses.
		stored, findErr := accountRepo.FindByResetToken(ctx, input.Token)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAccountNotFound) {
				return domainerrors.ErrInvalidResetToken.WrapMessage("reset token not found or already used")
			}

			return errors.Wrap(findErr, "failed to find account by reset token")
		}

		if stored.ID != claims.AccountID {
			return domainerrors.ErrInvalidResetToken.WrapMessage("reset token does not match account")
		}

		newHash, hashErr := srv.hasher.Hash(input.NewPassword, stored.Salt)
		if hashErr != nil {
			return domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash new password")
		}

		stored.PasswordHash = newHash
		stored.ClearResetToken()
		account = stored

		return accountRepo.Update(ctx, stored)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute password reset transaction", slog.Any("error", err))

		return err
	}

	if mailErr := srv.mailer.SendPasswordResetConfirmation(ctx, account.Email, account.Name); mailErr != nil {
		srv.log(ctx).Warn("Failed to send reset confirmation email", slog.Int64("accountID", account.ID), slog.Any("error", mailErr))
	}

	srv.log(ctx).Debug("Password reset completed", slog.Int64("accountID", account.ID))

	return nil
}

func (srv *passwordService) buildResetURL(token string) string {
	return fmt.Sprintf("%s?token=%s", srv.resetBaseURL, url.QueryEscape(token))
}
