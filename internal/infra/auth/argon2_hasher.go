// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"unicode"

	"github.com/pkg/errors"
	"golang.org/x/crypto/argon2"

	domainerrors "courier/internal/domain/errors"
	"courier/internal/domain/service"
)

// argon2id parameters. The salt is kept outside the encoded hash because the
// reset flow recomputes a hash under the salt already stored on the account.
const (
	saltLength  = 16
	argonTime   = 1
	argonMemory = 64 * 1024
	argonLanes  = 4
	argonKeyLen = 32

	minPasswordLength = 8
)

// argon2Hasher is a concrete implementation of the PasswordHasher interface using argon2id.
type argon2Hasher struct{}

// NewArgon2Hasher is the constructor for argon2Hasher.
// It returns the implementation as a service.PasswordHasher interface.
func NewArgon2Hasher() service.PasswordHasher {
	return &argon2Hasher{}
}

// GenerateSalt produces a fresh random salt, base64-encoded for storage.
func (h *argon2Hasher) GenerateSalt() (string, error) {
	salt := make([]byte, saltLength)
	if _, err := rand.Read(salt); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	return base64.RawStdEncoding.EncodeToString(salt), nil
}

// Hash derives an argon2id hash from a plaintext password and a stored salt.
// Deterministic for a given (password, salt) pair.
func (h *argon2Hasher) Hash(password, salt string) (string, error) {
	if salt == "" {
		return "", errors.New("salt must not be empty")
	}

	rawSalt, err := base64.RawStdEncoding.DecodeString(salt)
	if err != nil {
		return "", errors.Wrap(err, "failed to decode salt")
	}

	key := argon2.IDKey([]byte(password), rawSalt, argonTime, argonMemory, argonLanes, argonKeyLen)

	return base64.RawStdEncoding.EncodeToString(key), nil
}

// Check recomputes the hash for the candidate password and compares it in
// constant time against the stored hash.
func (h *argon2Hasher) Check(password, hash, salt string) bool {
	computed, err := h.Hash(password, salt)
	if err != nil {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(computed), []byte(hash)) == 1
}

// ValidatePasswordStrength enforces the password policy: at least 8
// characters with one uppercase letter, one lowercase letter and one digit,
// alphanumeric only.
func (h *argon2Hasher) ValidatePasswordStrength(password string) error {
	runes := []rune(password)
	if len(runes) < minPasswordLength {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must be at least 8 characters long")
	}

	var hasUpper, hasLower, hasDigit bool
	for _, r := range runes {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		default:
			return domainerrors.ErrPasswordStrength.WrapMessage("password must contain only letters and numbers")
		}
	}

	if !hasUpper {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one uppercase letter")
	}
	if !hasLower {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one lowercase letter")
	}
	if !hasDigit {
		return domainerrors.ErrPasswordStrength.WrapMessage("password must contain at least one number")
	}

	return nil
}
