package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/validator"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"
)

type fakeAccountUsecase struct {
	RegisterFunc   func(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error)
	LoginFunc      func(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error)
	GetAccountFunc func(ctx context.Context, accountID int64) (*entity.Account, error)
	ListFunc       func(ctx context.Context) ([]*entity.Account, error)
	DeleteFunc     func(ctx context.Context, accountID int64) error
}

func (f *fakeAccountUsecase) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	return f.RegisterFunc(ctx, input)
}

func (f *fakeAccountUsecase) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	return f.LoginFunc(ctx, input)
}

func (f *fakeAccountUsecase) GetAccount(ctx context.Context, accountID int64) (*entity.Account, error) {
	return f.GetAccountFunc(ctx, accountID)
}

func (f *fakeAccountUsecase) ListAccounts(ctx context.Context) ([]*entity.Account, error) {
	return f.ListFunc(ctx)
}

func (f *fakeAccountUsecase) DeleteAccount(ctx context.Context, accountID int64) error {
	return f.DeleteFunc(ctx, accountID)
}

type fakeTokenService struct {
	claims *service.SessionClaims
}

func (f *fakeTokenService) IssueSessionToken(int64, bool) (string, error) { return "t", nil }

func (f *fakeTokenService) VerifySessionToken(token string) (*service.SessionClaims, error) {
	if f.claims != nil && token == "good-token" {
		return f.claims, nil
	}

	return nil, errors.New("invalid token")
}

func (f *fakeTokenService) IssueResetToken(int64) (string, error) { return "", nil }

func (f *fakeTokenService) VerifyResetToken(string) (*service.ResetClaims, error) {
	return nil, errors.New("not implemented")
}

func (f *fakeTokenService) SessionTTL() time.Duration { return 48 * time.Hour }

func newTestEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestLoginSetsSessionCookie(t *testing.T) {
	uc := &fakeAccountUsecase{
		LoginFunc: func(_ context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return &usecase.LoginOutput{
				Token:   "signed-session",
				Account: &entity.Account{ID: 1, Email: input.Email},
			}, nil
		},
	}
	h := NewAccountHandler(uc, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ada@example.com","password":"Valid1234"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Login(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.SessionCookieName, cookies[0].Name)
	assert.Equal(t, "signed-session", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestLoginPropagatesUsecaseError(t *testing.T) {
	uc := &fakeAccountUsecase{
		LoginFunc: func(_ context.Context, _ *usecase.LoginInput) (*usecase.LoginOutput, error) {
			return nil, domainerrors.ErrUnknownLoginEmail.WrapMessage("login failed")
		},
	}
	h := NewAccountHandler(uc, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"ghost@example.com","password":"Valid1234"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrUnknownLoginEmail))
}

func TestLoginRejectsInvalidEmail(t *testing.T) {
	h := NewAccountHandler(&fakeAccountUsecase{}, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"not-an-email","password":"Valid1234"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Login(e.NewContext(req, rec))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
}

func TestRegisterCreated(t *testing.T) {
	uc := &fakeAccountUsecase{
		RegisterFunc: func(_ context.Context, input *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			return &usecase.RegisterOutput{
				Account: &entity.Account{ID: 1, Name: input.Name, Email: input.Email},
			}, nil
		},
	}
	h := NewAccountHandler(uc, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	body := `{"name":"Ada","surname":"Lovelace","email":"ada@example.com","password":"Valid1234"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	require.NoError(t, h.Register(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.NotContains(t, rec.Body.String(), "passwordHash", "hash must never leave the server")
	assert.NotContains(t, rec.Body.String(), "salt")
}

func TestRegisterDuplicateEmailIsBadRequest(t *testing.T) {
	uc := &fakeAccountUsecase{
		RegisterFunc: func(_ context.Context, _ *usecase.RegisterInput) (*usecase.RegisterOutput, error) {
			return nil, domainerrors.ErrEmailAlreadyRegistered.WrapMessage("register account")
		},
	}
	h := NewAccountHandler(uc, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	body := `{"name":"Ada","surname":"Lovelace","email":"ada@example.com","password":"Valid1234"}`
	req := httptest.NewRequest(http.MethodPost, "/auth/register", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	err := h.Register(e.NewContext(req, rec))
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "EMAIL_ALREADY_REGISTERED", appErr.ErrorCode())
}

func TestLogoutWithoutCookie(t *testing.T) {
	h := NewAccountHandler(&fakeAccountUsecase{}, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	rec := httptest.NewRecorder()

	err := h.Logout(e.NewContext(req, rec))
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNoSession))
}

func TestLogoutClearsCookie(t *testing.T) {
	h := NewAccountHandler(&fakeAccountUsecase{}, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()

	require.NoError(t, h.Logout(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Empty(t, cookies[0].Value)
	assert.Equal(t, -1, cookies[0].MaxAge)
}

func TestMeThroughAuthMiddleware(t *testing.T) {
	uc := &fakeAccountUsecase{
		GetAccountFunc: func(_ context.Context, accountID int64) (*entity.Account, error) {
			return &entity.Account{ID: accountID, Name: "Ada", Email: "ada@example.com"}, nil
		},
	}
	tokenSvc := &fakeTokenService{claims: &service.SessionClaims{AccountID: 7}}
	h := NewAccountHandler(uc, tokenSvc, testLogger())
	authMw := middleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho()
	e.GET("/me", h.Me, authMw.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":7`)
}

func TestMeAfterLogoutAcceptsOldCookie(t *testing.T) {
	uc := &fakeAccountUsecase{
		GetAccountFunc: func(_ context.Context, accountID int64) (*entity.Account, error) {
			return &entity.Account{ID: accountID, Name: "Ada", Email: "ada@example.com"}, nil
		},
	}
	tokenSvc := &fakeTokenService{claims: &service.SessionClaims{AccountID: 7}}
	h := NewAccountHandler(uc, tokenSvc, testLogger())
	authMw := middleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho()
	e.POST("/auth/logout", h.Logout)
	e.GET("/me", h.Me, authMw.Authenticate)

	logoutReq := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	logoutReq.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good-token"})
	logoutRec := httptest.NewRecorder()
	e.ServeHTTP(logoutRec, logoutReq)
	require.Equal(t, http.StatusNoContent, logoutRec.Code)

	// Sessions are stateless. Logout only clears the browser cookie, so a
	// replayed copy of the old token keeps working until it expires.
	meReq := httptest.NewRequest(http.MethodGet, "/me", nil)
	meReq.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good-token"})
	meRec := httptest.NewRecorder()
	e.ServeHTTP(meRec, meReq)

	assert.Equal(t, http.StatusOK, meRec.Code)
	assert.Contains(t, meRec.Body.String(), `"id":7`)
}

func TestMeWithoutCookieIsUnauthorized(t *testing.T) {
	tokenSvc := &fakeTokenService{}
	h := NewAccountHandler(&fakeAccountUsecase{}, tokenSvc, testLogger())
	authMw := middleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho()
	e.GET("/me", h.Me, authMw.Authenticate)

	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestListAccountsProjection(t *testing.T) {
	uc := &fakeAccountUsecase{
		ListFunc: func(_ context.Context) ([]*entity.Account, error) {
			return []*entity.Account{
				{ID: 2, Name: "Grace", Email: "grace@example.com", PasswordHash: "secret-hash"},
				{ID: 1, Name: "Ada", Email: "ada@example.com", PasswordHash: "secret-hash"},
			}, nil
		},
	}
	h := NewAccountHandler(uc, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	rec := httptest.NewRecorder()

	require.NoError(t, h.ListAccounts(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":2`)
	assert.NotContains(t, rec.Body.String(), "secret-hash")
	assert.NotContains(t, rec.Body.String(), "email", "listing exposes only id, name and isAdmin")
}

func TestDeleteAccountByIDRejectsNonInteger(t *testing.T) {
	h := NewAccountHandler(&fakeAccountUsecase{}, &fakeTokenService{}, testLogger())

	e := newTestEcho()
	req := httptest.NewRequest(http.MethodDelete, "/users/abc", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("abc")

	require.NoError(t, h.DeleteAccountByID(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRequireAdminBlocksNonAdmins(t *testing.T) {
	tokenSvc := &fakeTokenService{claims: &service.SessionClaims{AccountID: 7, IsAdmin: false}}
	uc := &fakeAccountUsecase{
		ListFunc: func(_ context.Context) ([]*entity.Account, error) {
			return nil, nil
		},
	}
	h := NewAccountHandler(uc, tokenSvc, testLogger())
	authMw := middleware.NewAuthMiddleware(tokenSvc)

	e := newTestEcho()
	e.GET("/users", h.ListAccounts, authMw.Authenticate, authMw.RequireAdmin)

	req := httptest.NewRequest(http.MethodGet, "/users", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: "good-token"})
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusForbidden, rec.Code)
}
