package middleware

import (
	"net/http"

	deliverycontext "courier/internal/delivery/context"
	"courier/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName is the cookie carrying the signed session token.
const SessionCookieName = "token"

// AuthMiddleware validates the session cookie and loads the caller identity.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate is the core middleware function that validates the session cookie.
// A missing cookie is a 401 here; only the logout handler treats it as 400.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Session cookie is missing"})
		}

		claims, err := m.tokenSvc.VerifySessionToken(cookie.Value)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, map[string]string{"error": "Invalid or expired session"})
		}

		deliverycontext.SetIdentity(c, deliverycontext.Identity{
			AccountID: claims.AccountID,
			IsAdmin:   claims.IsAdmin,
		})

		return next(c)
	}
}

// RequireAdmin rejects non-admin callers.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		identity, ok := deliverycontext.GetIdentity(c)
		if !ok {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: identity missing"})
		}

		if !identity.IsAdmin {
			return c.JSON(http.StatusForbidden, map[string]string{"error": "Permission denied: admin only"})
		}

		return next(c)
	}
}
