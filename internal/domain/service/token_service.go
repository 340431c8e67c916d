package service

import "time"

// SessionClaims is the canonical payload embedded in every session token.
// All issuance sites use exactly this shape.
type SessionClaims struct {
	AccountID int64
	IsAdmin   bool
	ExpiresAt time.Time
}

// ResetClaims is the payload of a purpose-scoped password-reset token.
// Reset tokens are signed with a secret distinct from session tokens and
// carry a random ID so they are unguessable.
type ResetClaims struct {
	AccountID int64
	TokenID   string
	ExpiresAt time.Time
}

// TokenService defines the interface for issuing and verifying signed tokens.
// Verification fails closed: any malformed, tampered or expired token yields
// an error, never a partial payload.
type TokenService interface {
	// IssueSessionToken creates a signed, time-limited session token.
	IssueSessionToken(accountID int64, isAdmin bool) (string, error)

	// VerifySessionToken validates a session token and decodes its claims.
	VerifySessionToken(token string) (*SessionClaims, error)

	// IssueResetToken creates a single-purpose password-reset token.
	IssueResetToken(accountID int64) (string, error)

	// VerifyResetToken validates a reset token and decodes its claims.
	VerifyResetToken(token string) (*ResetClaims, error)

	// SessionTTL returns the configured session token lifetime.
	SessionTTL() time.Duration
}
