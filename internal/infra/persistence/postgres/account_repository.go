// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
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

// accountRepository implements the domain.AccountRepository interface using GORM.
type accountRepository struct {
	db *gorm.DB
}

// NewAccountRepository is the constructor for accountRepository.
// It returns the repository as a domain interface, adhering to dependency inversion.
func NewAccountRepository(db *gorm.DB) repository.AccountRepository {
	return &accountRepository{db: db}
}

// FindByID retrieves a single account by its primary key.
func (repo *accountRepository) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).First(&accountM, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by id")
	}

	return toAccountDomain(&accountM), nil
}

// FindByEmail retrieves a single account by its unique email address.
func (repo *accountRepository) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("email = ?", email).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by email")
	}

	return toAccountDomain(&accountM), nil
}

// FindByResetToken retrieves the account holding the given reset-password token.
// Cleared tokens are NULL and never match.
func (repo *accountRepository) FindByResetToken(ctx context.Context, token string) (*entity.Account, error) {
	var accountM model.AccountModel
	if err := repo.db.WithContext(ctx).Where("reset_password_token = ?", token).First(&accountM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAccountNotFound
		}

		return nil, errors.Wrap(err, "failed to find account by reset token")
	}

	return toAccountDomain(&accountM), nil
}

// Create persists a new account and backfills the generated ID and timestamps
// into the entity.
func (repo *accountRepository) Create(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	if err := repo.db.WithContext(ctx).Create(accountM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrAccountCreationFailed.WrapMessage("missing required account information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create account")
	}

	account.ID = accountM.ID
	account.CreatedAt = accountM.CreatedAt
	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Update saves the full account row. Save is used instead of Updates so that
// zero values (a cleared reset token, an emptied profile image) are written.
func (repo *accountRepository) Update(ctx context.Context, account *entity.Account) error {
	accountM := fromAccountDomain(account)

	result := repo.db.WithContext(ctx).Save(accountM)
	if err := result.Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrEmailAlreadyRegistered.WrapMessage("email already registered")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	account.UpdatedAt = accountM.UpdatedAt

	return nil
}

// Delete removes an account by its primary key.
func (repo *accountRepository) Delete(ctx context.Context, id int64) error {
	result := repo.db.WithContext(ctx).Delete(&model.AccountModel{}, id)
	if err := result.Error; err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to delete account")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAccountNotFound
	}

	return nil
}

// ListNonAdmins returns non-admin accounts ordered newest first, capped at limit.
func (repo *accountRepository) ListNonAdmins(ctx context.Context, limit int) ([]*entity.Account, error) {
	var accountMs []*model.AccountModel
	err := repo.db.WithContext(ctx).
		Where("is_admin = ?", false).
		Order("created_at DESC").
		Limit(limit).
		Find(&accountMs).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to list accounts")
	}

	accounts := make([]*entity.Account, 0, len(accountMs))
	for _, accountM := range accountMs {
		accounts = append(accounts, toAccountDomain(accountM))
	}

	return accounts, nil
}

// toAccountDomain maps the persistence model back to a pure domain entity.
func toAccountDomain(accountM *model.AccountModel) *entity.Account {
	account := &entity.Account{
		ID:           accountM.ID,
		Name:         accountM.Name,
		Surname:      accountM.Surname,
		Email:        accountM.Email,
		PasswordHash: accountM.PasswordHash,
		Salt:         accountM.Salt,
		IsAdmin:      accountM.IsAdmin,
		ProfileImage: accountM.ProfileImage,
		CreatedAt:    accountM.CreatedAt,
		UpdatedAt:    accountM.UpdatedAt,
	}
	if accountM.ResetPasswordToken != nil {
		account.ResetPasswordToken = *accountM.ResetPasswordToken
	}

	return account
}

// fromAccountDomain maps a domain entity to the GORM persistence model.
func fromAccountDomain(account *entity.Account) *model.AccountModel {
	accountM := &model.AccountModel{
		ID:           account.ID,
		Name:         account.Name,
		Surname:      account.Surname,
		Email:        account.Email,
		PasswordHash: account.PasswordHash,
		Salt:         account.Salt,
		IsAdmin:      account.IsAdmin,
		ProfileImage: account.ProfileImage,
		CreatedAt:    account.CreatedAt,
		UpdatedAt:    account.UpdatedAt,
	}
	if account.ResetPasswordToken != "" {
		token := account.ResetPasswordToken
		accountM.ResetPasswordToken = &token
	}

	return accountM
}
