// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"courier/internal/delivery/http/middleware"
	"courier/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AccountHandler  *handler.AccountHandler
	PasswordHandler *handler.PasswordHandler
	ProfileHandler  *handler.ProfileHandler
	PackageHandler  *handler.PackageHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	accountHandler  *handler.AccountHandler
	passwordHandler *handler.PasswordHandler
	profileHandler  *handler.ProfileHandler
	packageHandler  *handler.PackageHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		accountHandler:  params.AccountHandler,
		passwordHandler: params.PasswordHandler,
		profileHandler:  params.ProfileHandler,
		packageHandler:  params.PackageHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes. Logout reads the cookie itself so it can answer 400
	// instead of 401 when no session cookie is present.
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.accountHandler.Register)
		authGroup.POST("/login", r.accountHandler.Login)
		authGroup.POST("/logout", r.accountHandler.Logout)
		authGroup.POST("/forgot-password", r.passwordHandler.ForgotPassword)
		authGroup.POST("/reset-password", r.passwordHandler.ResetPassword)
	}

	// Current-account routes that require a valid session.
	e.GET("/me", r.accountHandler.Me, r.authMiddleware.Authenticate)

	profileGroup := e.Group("/profile-image")
	profileGroup.Use(r.authMiddleware.Authenticate)
	{
		profileGroup.GET("", r.profileHandler.GetProfileImage)
		profileGroup.POST("", r.profileHandler.SetProfileImage)
		profileGroup.DELETE("", r.profileHandler.ClearProfileImage)
	}

	// Admin-only user management.
	usersGroup := e.Group("/users")
	usersGroup.Use(r.authMiddleware.Authenticate)
	usersGroup.Use(r.authMiddleware.RequireAdmin)
	{
		usersGroup.GET("", r.accountHandler.ListAccounts)
		usersGroup.GET("/:id", r.accountHandler.GetAccountByID)
		usersGroup.DELETE("/:id", r.accountHandler.DeleteAccountByID)
	}

	// Package tracking. Reads need a session; writes are admin-only.
	packagesGroup := e.Group("/packages")
	packagesGroup.Use(r.authMiddleware.Authenticate)
	{
		packagesGroup.GET("", r.packageHandler.ListPackages)
		packagesGroup.GET("/:id", r.packageHandler.GetPackage)

		packagesGroup.POST("", r.packageHandler.CreatePackage, r.authMiddleware.RequireAdmin)
		packagesGroup.PATCH("/:id/status", r.packageHandler.UpdatePackageStatus, r.authMiddleware.RequireAdmin)
		packagesGroup.DELETE("/:id", r.packageHandler.DeletePackage, r.authMiddleware.RequireAdmin)
	}
}
