// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"
	"strconv"
	"time"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/response"
	"courier/internal/domain/entity"
	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"
	"courier/internal/errors"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// AccountHandler holds dependencies for account-related handlers.
type AccountHandler struct {
	uc       usecase.AccountUsecase
	tokenSvc service.TokenService
	logger   *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler, injected by Fx.
func NewAccountHandler(uc usecase.AccountUsecase, tokenSvc service.TokenService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{
		uc:       uc,
		tokenSvc: tokenSvc,
		logger:   logger,
	}
}

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	IsAdmin  bool   `json:"isAdmin"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the account projection returned to clients.
// Hash and salt never leave the server.
type accountResponse struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Surname      string `json:"surname"`
	Email        string `json:"email"`
	IsAdmin      bool   `json:"isAdmin"`
	ProfileImage string `json:"profileImage,omitempty"`
}

// accountSummary is the trimmed projection used by the admin listing.
type accountSummary struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	IsAdmin bool   `json:"isAdmin"`
}

func toAccountResponse(account *entity.Account) accountResponse {
	return accountResponse{
		ID:           account.ID,
		Name:         account.Name,
		Surname:      account.Surname,
		Email:        account.Email,
		IsAdmin:      account.IsAdmin,
		ProfileImage: account.ProfileImage,
	}
}

// Register handles the account registration request.
func (h *AccountHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid registration input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Register(c.Request().Context(), &usecase.RegisterInput{
		Name:     req.Name,
		Surname:  req.Surname,
		Email:    req.Email,
		Password: req.Password,
		IsAdmin:  req.IsAdmin,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, toAccountResponse(output.Account), "Account registered successfully")
}

// Login verifies the credentials and plants the http-only session cookie.
func (h *AccountHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(c.Request().Context(), &usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	c.SetCookie(h.sessionCookie(output.Token, time.Now().Add(h.tokenSvc.SessionTTL())))

	return response.Success(c, http.StatusOK, toAccountResponse(output.Account), "Login successful")
}

// Logout clears the session cookie. Sessions are stateless, so the old token
// stays valid until it expires; logout only removes it from the browser.
func (h *AccountHandler) Logout(c echo.Context) error {
	if cookie, err := c.Cookie(middleware.SessionCookieName); err != nil || cookie.Value == "" {
		return domainerrors.ErrNoSession.WrapMessage("logout without session cookie")
	}

	expired := h.sessionCookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	c.SetCookie(expired)

	return c.NoContent(http.StatusNoContent)
}

// Me returns the authenticated caller's account.
func (h *AccountHandler) Me(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Identity missing from request")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account retrieved successfully")
}

// ListAccounts returns the newest non-admin accounts for the admin view.
func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.uc.ListAccounts(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	summaries := make([]accountSummary, 0, len(accounts))
	for _, account := range accounts {
		summaries = append(summaries, accountSummary{
			ID:      account.ID,
			Name:    account.Name,
			IsAdmin: account.IsAdmin,
		})
	}

	return response.Success(c, http.StatusOK, summaries, "Accounts retrieved successfully")
}

// GetAccountByID returns a single account for the admin view.
func (h *AccountHandler) GetAccountByID(c echo.Context) error {
	accountID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Account id must be an integer")
	}

	account, err := h.uc.GetAccount(c.Request().Context(), accountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, toAccountResponse(account), "Account retrieved successfully")
}

// DeleteAccountByID removes an account from the admin view.
func (h *AccountHandler) DeleteAccountByID(c echo.Context) error {
	accountID, err := parseIDParam(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Account id must be an integer")
	}

	if err := h.uc.DeleteAccount(c.Request().Context(), accountID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}

func (h *AccountHandler) sessionCookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    value,
		Path:     "/",
		Expires:  expires,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

func parseIDParam(c echo.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}
