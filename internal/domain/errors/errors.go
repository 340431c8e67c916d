package errors

import (
	"net/http"

	"courier/internal/errors"
)

// AppError defines the interface for application-specific errors
type AppError interface {
	error
	HTTPCode() int     // HTTP status code
	ErrorCode() string // Business error code
	Message() string   // User-friendly error message
	Details() string   // Detailed error information (optional)
}

// BaseError is a basic error structure that implements the AppError interface
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

// NewBaseError creates a new base error
func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{
		httpCode:  httpCode,
		errorCode: errorCode,
		message:   message,
		details:   details,
	}
}

// Error implements the error interface
func (e *BaseError) Error() string {
	return e.message
}

// WrapMessage wraps the error with additional context message
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// HTTPCode returns the HTTP status code
func (e *BaseError) HTTPCode() int {
	return e.httpCode
}

// ErrorCode returns the business error code
func (e *BaseError) ErrorCode() string {
	return e.errorCode
}

// Message returns the user-friendly error message
func (e *BaseError) Message() string {
	return e.message
}

// Details returns detailed error information
func (e *BaseError) Details() string {
	return e.details
}

// WithDetails adds detailed error information
func (e *BaseError) WithDetails(details string) *BaseError {
	return &BaseError{
		httpCode:  e.httpCode,
		errorCode: e.errorCode,
		message:   e.message,
		details:   details,
	}
}

// Predefined error types
var (
	// Account-related errors
	ErrAccountNotFound = NewBaseError(
		http.StatusNotFound,
		"ACCOUNT_NOT_FOUND",
		"account not found",
		"",
	)

	// A duplicate email is user-correctable, so it answers 400 rather
	// than 409.
	ErrEmailAlreadyRegistered = NewBaseError(
		http.StatusBadRequest,
		"EMAIL_ALREADY_REGISTERED",
		"this email is already registered",
		"",
	)

	ErrAccountCreationFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_CREATION_FAILED",
		"failed to create account",
		"",
	)

	ErrAccountUpdateFailed = NewBaseError(
		http.StatusInternalServerError,
		"ACCOUNT_UPDATE_FAILED",
		"failed to update account",
		"",
	)

	// Authentication-related errors.
	// An unknown login email is deliberately a 400: the login contract is
	// 400 for an unknown email and 401 for a bad password.
	ErrUnknownLoginEmail = NewBaseError(
		http.StatusBadRequest,
		"USER_NOT_FOUND",
		"no account registered for this email",
		"",
	)

	ErrInvalidCredentials = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_CREDENTIALS",
		"wrong email or password",
		"",
	)

	ErrNoSession = NewBaseError(
		http.StatusBadRequest,
		"NO_SESSION",
		"no active session",
		"",
	)

	ErrInvalidSession = NewBaseError(
		http.StatusUnauthorized,
		"INVALID_SESSION",
		"invalid or expired session token",
		"",
	)

	ErrPasswordHashFailed = NewBaseError(
		http.StatusInternalServerError,
		"PASSWORD_HASH_FAILED",
		"failed to process password",
		"",
	)

	ErrPasswordStrength = NewBaseError(
		http.StatusBadRequest,
		"PASSWORD_STRENGTH",
		"password does not meet the minimum requirements",
		"",
	)

	// Password-reset errors
	ErrInvalidResetToken = NewBaseError(
		http.StatusBadRequest,
		"RESET_TOKEN_INVALID",
		"invalid or expired reset token",
		"",
	)

	// Profile errors
	ErrProfileImageRequired = NewBaseError(
		http.StatusBadRequest,
		"PROFILE_IMAGE_REQUIRED",
		"a base64 image payload is required",
		"",
	)

	// Package-related errors
	ErrPackageNotFound = NewBaseError(
		http.StatusNotFound,
		"PACKAGE_NOT_FOUND",
		"package not found",
		"",
	)

	ErrInvalidPackageStatus = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PACKAGE_STATUS",
		"unknown package status",
		"",
	)

	ErrPackageStatusFinal = NewBaseError(
		http.StatusConflict,
		"PACKAGE_STATUS_FINAL",
		"package is already in a final state",
		"",
	)

	ErrInvalidPackageWeight = NewBaseError(
		http.StatusBadRequest,
		"INVALID_PACKAGE_WEIGHT",
		"package weight must be positive",
		"",
	)

	// Validation-related errors
	ErrValidationFailed = NewBaseError(
		http.StatusBadRequest,
		"VALIDATION_FAILED",
		"input validation failed",
		"",
	)

	// General errors
	ErrInternalError = NewBaseError(
		http.StatusInternalServerError,
		"INTERNAL_ERROR",
		"internal server error",
		"",
	)

	ErrForbidden = NewBaseError(
		http.StatusForbidden,
		"FORBIDDEN",
		"access denied",
		"",
	)

	ErrNotFound = NewBaseError(
		http.StatusNotFound,
		"NOT_FOUND",
		"resource not found",
		"",
	)
)

// DatabaseExecuteError represents a database execution error, implementing the AppError interface
type DatabaseExecuteError struct {
	err     error
	details string
}

// NewDatabaseExecuteError creates a database-related error
func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{
		err:     err,
		details: details,
	}
}

// Error implements the error interface
func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, "database execution failed").Error()
}

// HTTPCode returns the HTTP status code
func (e *DatabaseExecuteError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *DatabaseExecuteError) ErrorCode() string {
	return "DATABASE_EXECUTE_FAILED"
}

// Message returns the user-friendly error message
func (e *DatabaseExecuteError) Message() string {
	return "database execution failed"
}

// Details returns detailed error information
func (e *DatabaseExecuteError) Details() string {
	return e.details
}
