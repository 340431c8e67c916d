package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/delivery/http/response"
	"courier/internal/errors"
	"courier/internal/usecase"

	"github.com/labstack/echo/v4"
)

// ProfileHandler holds dependencies for the profile-image handlers.
type ProfileHandler struct {
	uc     usecase.ProfileUsecase
	logger *slog.Logger
}

// NewProfileHandler is the constructor for ProfileHandler, injected by Fx.
func NewProfileHandler(uc usecase.ProfileUsecase, logger *slog.Logger) *ProfileHandler {
	return &ProfileHandler{
		uc:     uc,
		logger: logger,
	}
}

type setProfileImageRequest struct {
	Image string `json:"image" validate:"required"`
}

// GetProfileImage returns the caller's stored image payload.
func (h *ProfileHandler) GetProfileImage(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Identity missing from request")
	}

	image, err := h.uc.GetProfileImage(c.Request().Context(), identity.AccountID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"image": image}, "Profile image retrieved successfully")
}

// SetProfileImage stores a base64 image payload on the caller's account.
func (h *ProfileHandler) SetProfileImage(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Identity missing from request")
	}

	var req setProfileImageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid profile image input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	if err := h.uc.SetProfileImage(c.Request().Context(), identity.AccountID, req.Image); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Profile image stored successfully")
}

// ClearProfileImage removes the caller's stored image payload.
func (h *ProfileHandler) ClearProfileImage(c echo.Context) error {
	identity, ok := deliverycontext.GetIdentity(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_SESSION", "Identity missing from request")
	}

	if err := h.uc.ClearProfileImage(c.Request().Context(), identity.AccountID); err != nil {
		return errors.WithStack(err)
	}

	return c.NoContent(http.StatusNoContent)
}
