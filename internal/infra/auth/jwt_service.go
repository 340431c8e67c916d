// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"courier/config"
	"courier/internal/domain/service"
)

const (
	tokenTypeSession = "session"
	tokenTypeReset   = "reset"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
// Session and reset tokens are signed with distinct secrets so a session
// token can never be replayed as a reset credential or vice versa.
type jwtService struct {
	sessionSecret string
	resetSecret   string
	sessionTTL    time.Duration
	resetTTL      time.Duration
}

// tokenClaims is the wire shape of both token kinds.
type tokenClaims struct {
	IsAdmin   bool   `json:"adm,omitempty"`
	TokenType string `json:"typ"`
	jwt.RegisteredClaims
}

// NewJWTService is the constructor for jwtService.
// An empty signing secret is a configuration error and is rejected here, at
// startup, rather than silently accepted.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" || cfg.SecretKey.Reset == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	return &jwtService{
		sessionSecret: cfg.SecretKey.Session,
		resetSecret:   cfg.SecretKey.Reset,
		sessionTTL:    cfg.Auth.SessionTTL,
		resetTTL:      cfg.Auth.ResetTTL,
	}, nil
}

// IssueSessionToken creates a signed session token carrying the canonical
// {accountID, isAdmin} payload.
func (s *jwtService) IssueSessionToken(accountID int64, isAdmin bool) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		IsAdmin:   isAdmin,
		TokenType: tokenTypeSession,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.sessionTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.sessionSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// VerifySessionToken validates a session token and decodes its claims.
// Any malformed, tampered or expired token yields an error.
func (s *jwtService) VerifySessionToken(token string) (*service.SessionClaims, error) {
	claims, err := s.parse(token, s.sessionSecret, tokenTypeSession)
	if err != nil {
		return nil, err
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in session token")
	}

	return &service.SessionClaims{
		AccountID: accountID,
		IsAdmin:   claims.IsAdmin,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// IssueResetToken creates a purpose-scoped, single-use reset token with a
// random ID, signed with the dedicated reset secret.
func (s *jwtService) IssueResetToken(accountID int64) (string, error) {
	now := time.Now()
	claims := tokenClaims{
		TokenType: tokenTypeReset,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(accountID, 10),
			ID:        uuid.New().String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.resetTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.resetSecret))
	if err != nil {
		return "", errors.Wrap(err, "failed to sign reset token")
	}

	return signed, nil
}

// VerifyResetToken validates a reset token and decodes its claims.
func (s *jwtService) VerifyResetToken(token string) (*service.ResetClaims, error) {
	claims, err := s.parse(token, s.resetSecret, tokenTypeReset)
	if err != nil {
		return nil, err
	}

	accountID, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return nil, errors.Wrap(err, "invalid subject in reset token")
	}

	return &service.ResetClaims{
		AccountID: accountID,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// SessionTTL returns the configured session token lifetime.
func (s *jwtService) SessionTTL() time.Duration {
	return s.sessionTTL
}

// parse validates the signature, expiry and token type, failing closed on
// any mismatch.
func (s *jwtService) parse(token, secret, wantType string) (*tokenClaims, error) {
	claims := &tokenClaims{}

	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return []byte(secret), nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !parsed.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.TokenType != wantType {
		return nil, errors.Errorf("unexpected token type %q", claims.TokenType)
	}
	if claims.ExpiresAt == nil {
		return nil, errors.New("token has no expiry")
	}

	return claims, nil
}
