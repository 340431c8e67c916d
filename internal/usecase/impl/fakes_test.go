package impl

import (
	"context"
	"log/slog"
	"time"

	"courier/internal/domain/entity"
	"courier/internal/domain/repository"
	"courier/internal/domain/service"
)

// Hand-written fakes with overridable function fields. Unset lookups miss,
// unset writes succeed, so each test only fills in what it asserts on.

type fakeAccountRepo struct {
	FindByIDFunc         func(ctx context.Context, id int64) (*entity.Account, error)
	FindByEmailFunc      func(ctx context.Context, email string) (*entity.Account, error)
	FindByResetTokenFunc func(ctx context.Context, token string) (*entity.Account, error)
	CreateFunc           func(ctx context.Context, account *entity.Account) error
	UpdateFunc           func(ctx context.Context, account *entity.Account) error
	DeleteFunc           func(ctx context.Context, id int64) error
	ListNonAdminsFunc    func(ctx context.Context, limit int) ([]*entity.Account, error)
}

func (f *fakeAccountRepo) FindByID(ctx context.Context, id int64) (*entity.Account, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) FindByEmail(ctx context.Context, email string) (*entity.Account, error) {
	if f.FindByEmailFunc != nil {
		return f.FindByEmailFunc(ctx, email)
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) FindByResetToken(ctx context.Context, token string) (*entity.Account, error) {
	if f.FindByResetTokenFunc != nil {
		return f.FindByResetTokenFunc(ctx, token)
	}

	return nil, repository.ErrAccountNotFound
}

func (f *fakeAccountRepo) Create(ctx context.Context, account *entity.Account) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, account)
	}

	return nil
}

func (f *fakeAccountRepo) Update(ctx context.Context, account *entity.Account) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, account)
	}

	return nil
}

func (f *fakeAccountRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}

	return nil
}

func (f *fakeAccountRepo) ListNonAdmins(ctx context.Context, limit int) ([]*entity.Account, error) {
	if f.ListNonAdminsFunc != nil {
		return f.ListNonAdminsFunc(ctx, limit)
	}

	return nil, nil
}

type fakePackageRepo struct {
	FindByIDFunc func(ctx context.Context, id int64) (*entity.Package, error)
	ListFunc     func(ctx context.Context) ([]*entity.Package, error)
	CreateFunc   func(ctx context.Context, pkg *entity.Package) error
	UpdateFunc   func(ctx context.Context, pkg *entity.Package) error
	DeleteFunc   func(ctx context.Context, id int64) error
}

func (f *fakePackageRepo) FindByID(ctx context.Context, id int64) (*entity.Package, error) {
	if f.FindByIDFunc != nil {
		return f.FindByIDFunc(ctx, id)
	}

	return nil, repository.ErrPackageNotFound
}

func (f *fakePackageRepo) List(ctx context.Context) ([]*entity.Package, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx)
	}

	return nil, nil
}

func (f *fakePackageRepo) Create(ctx context.Context, pkg *entity.Package) error {
	if f.CreateFunc != nil {
		return f.CreateFunc(ctx, pkg)
	}

	return nil
}

func (f *fakePackageRepo) Update(ctx context.Context, pkg *entity.Package) error {
	if f.UpdateFunc != nil {
		return f.UpdateFunc(ctx, pkg)
	}

	return nil
}

func (f *fakePackageRepo) Delete(ctx context.Context, id int64) error {
	if f.DeleteFunc != nil {
		return f.DeleteFunc(ctx, id)
	}

	return nil
}

// fakeTxManager hands the callback a factory over the given fakes, no real
// transaction involved.
type fakeTxManager struct {
	accountRepo *fakeAccountRepo
	packageRepo *fakePackageRepo
}

func (f *fakeTxManager) Execute(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(&fakeRepoFactory{accountRepo: f.accountRepo, packageRepo: f.packageRepo})
}

type fakeRepoFactory struct {
	accountRepo *fakeAccountRepo
	packageRepo *fakePackageRepo
}

func (f *fakeRepoFactory) AccountRepo() repository.AccountRepository {
	return f.accountRepo
}

func (f *fakeRepoFactory) PackageRepo() repository.PackageRepository {
	return f.packageRepo
}

// fakeHasher hashes by concatenation so tests can assert on stored values.
type fakeHasher struct {
	ValidateFunc func(password string) error
}

func (f *fakeHasher) GenerateSalt() (string, error) {
	return "test-salt", nil
}

func (f *fakeHasher) Hash(password, salt string) (string, error) {
	return "hash(" + password + "," + salt + ")", nil
}

func (f *fakeHasher) Check(password, hash, salt string) bool {
	computed, _ := f.Hash(password, salt)

	return computed == hash
}

func (f *fakeHasher) ValidatePasswordStrength(password string) error {
	if f.ValidateFunc != nil {
		return f.ValidateFunc(password)
	}

	return nil
}

type fakeTokenService struct {
	IssueSessionFunc func(accountID int64, isAdmin bool) (string, error)
	IssueResetFunc   func(accountID int64) (string, error)
	VerifyResetFunc  func(token string) (*service.ResetClaims, error)
}

func (f *fakeTokenService) IssueSessionToken(accountID int64, isAdmin bool) (string, error) {
	if f.IssueSessionFunc != nil {
		return f.IssueSessionFunc(accountID, isAdmin)
	}

	return "session-token", nil
}

func (f *fakeTokenService) VerifySessionToken(token string) (*service.SessionClaims, error) {
	return &service.SessionClaims{AccountID: 1}, nil
}

func (f *fakeTokenService) IssueResetToken(accountID int64) (string, error) {
	if f.IssueResetFunc != nil {
		return f.IssueResetFunc(accountID)
	}

	return "reset-token", nil
}

func (f *fakeTokenService) VerifyResetToken(token string) (*service.ResetClaims, error) {
	if f.VerifyResetFunc != nil {
		return f.VerifyResetFunc(token)
	}

	return &service.ResetClaims{AccountID: 1, TokenID: "token-id"}, nil
}

func (f *fakeTokenService) SessionTTL() time.Duration {
	return 48 * time.Hour
}

// fakeMailer records every send and optionally fails them.
type fakeMailer struct {
	WelcomeSent      []string
	ResetSent        []string
	ResetURLs        []string
	ConfirmationSent []string
	SendErr          error
}

func (f *fakeMailer) SendWelcome(ctx context.Context, to, name string) error {
	f.WelcomeSent = append(f.WelcomeSent, to)

	return f.SendErr
}

func (f *fakeMailer) SendPasswordReset(ctx context.Context, to, name, resetURL string) error {
	f.ResetSent = append(f.ResetSent, to)
	f.ResetURLs = append(f.ResetURLs, resetURL)

	return f.SendErr
}

func (f *fakeMailer) SendPasswordResetConfirmation(ctx context.Context, to, name string) error {
	f.ConfirmationSent = append(f.ConfirmationSent, to)

	return f.SendErr
}

func testLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}
