// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"

	"go.uber.org/fx"
)

// Admin listing is capped so the endpoint never pages through the whole table.
const listAccountsLimit = 20

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	mailer       service.Mailer
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for accountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	AccountRepo  repository.AccountRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Mailer       service.Mailer
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		mailer:       params.Mailer,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register orchestrates the complete account registration process.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.log(ctx).Warn("Password validation failed during registration", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	salt, err := srv.hasher.GenerateSalt()
	if err != nil {
		srv.log(ctx).Error("Failed to generate salt during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to generate salt")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password, salt)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage("failed to hash password")
	}

	newAccount := &entity.Account{
		Name:         input.Name,
		Surname:      input.Surname,
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Salt:         salt,
		IsAdmin:      input.IsAdmin,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		_, findErr := accountRepo.FindByEmail(ctx, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check email uniqueness")
		}

		return accountRepo.Create(ctx, newAccount)
	})
	if err != nil {
		srv.log(ctx).Warn("Failed to execute registration transaction", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	// The account is committed at this point. A mail failure is logged and
	// never surfaces to the caller.
	if mailErr := srv.mailer.SendWelcome(ctx, newAccount.Email, newAccount.Name); mailErr != nil {
		srv.log(ctx).Warn("Failed to send welcome email", slog.Int64("accountID", newAccount.ID), slog.Any("error", mailErr))
	}

	srv.log(ctx).Debug("Registration completed", slog.Int64("accountID", newAccount.ID))

	return &usecase.RegisterOutput{Account: newAccount}, nil
}

// Login verifies the credentials and issues a signed session token.
// An unknown email and a wrong password fail differently on purpose: the
// login contract distinguishes the two cases.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	account, err := srv.accountRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", err))

		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrUnknownLoginEmail.WrapMessage("login failed")
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	// Argon2id is CPU-bound; keep the check outside any transaction.
	if !srv.hasher.Check(input.Password, account.PasswordHash, account.Salt) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login failed")
	}

	token, err := srv.tokenService.IssueSessionToken(account.ID, account.IsAdmin)
	if err != nil {
		srv.log(ctx).Error("Failed to issue session token", slog.Int64("accountID", account.ID), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue session token")
	}

	srv.log(ctx).Debug("Login succeeded", slog.Int64("accountID", account.ID))

	return &usecase.LoginOutput{Token: token, Account: account}, nil
}

// GetAccount loads a single account by ID.
func (srv *accountService) GetAccount(ctx context.Context, accountID int64) (*entity.Account, error) {
	account, err := srv.accountRepo.FindByID(ctx, accountID)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return nil, domainerrors.ErrAccountNotFound.WrapMessage("account lookup failed")
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return account, nil
}

// ListAccounts returns the newest non-admin accounts for the admin view.
func (srv *accountService) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	accounts, err := srv.accountRepo.ListNonAdmins(ctx, listAccountsLimit)
	if err != nil {
		srv.log(ctx).Error("Failed to list accounts", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list accounts")
	}

	return accounts, nil
}

// DeleteAccount removes an account by ID.
func (srv *accountService) DeleteAccount(ctx context.Context, accountID int64) error {
	srv.log(ctx).Info("Deleting account", slog.Int64("accountID", accountID))

	if err := srv.accountRepo.Delete(ctx, accountID); err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			return domainerrors.ErrAccountNotFound.WrapMessage("account deletion failed")
		}

		return errors.Wrap(err, "failed to delete account")
	}

	return nil
}
