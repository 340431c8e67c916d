package handler

import (
	"log/slog"
	"net/http"

	"courier/internal/delivery/http/response"
	"courier/internal/errors"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// PasswordHandler holds dependencies for the password-reset handlers.
type PasswordHandler struct {
	uc     usecase.PasswordUsecase
	logger *slog.Logger
}

// NewPasswordHandler is the constructor for PasswordHandler, injected by Fx.
func NewPasswordHandler(uc usecase.PasswordUsecase, logger *slog.Logger) *PasswordHandler {
	return &PasswordHandler{
		uc:     uc,
		logger: logger,
	}
}

type forgotPasswordRequest struct {
	Email string `json:"email" validate:"required,email"`
}

type resetPasswordRequest struct {
	Token       string `json:"token" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required"`
}

// ForgotPassword mints a reset token and emails the reset link.
func (h *PasswordHandler) ForgotPassword(c echo.Context) error {
	var req forgotPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid forgot-password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.ForgotPassword(c.Request().Context(), &usecase.ForgotPasswordInput{Email: req.Email}); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset link sent")
}

// ResetPassword consumes the emailed token and replaces the password.
func (h *PasswordHandler) ResetPassword(c echo.Context) error {
	var req resetPasswordRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid reset-password input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	input := &usecase.ResetPasswordInput{
		Token:       req.Token,
		NewPassword: req.NewPassword,
	}
	if err := h.uc.ResetPassword(c.Request().Context(), input); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Password reset successfully")
}
