// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

// PasswordHasher defines the interface for salted password hashing and verification.
// The salt is explicit so the reset flow can recompute a hash with the salt
// already stored on the account.
type PasswordHasher interface {
	// GenerateSalt produces a fresh random salt for a new account.
	GenerateSalt() (string, error)

	// Hash derives a hash from a plaintext password and a salt.
	// Deterministic for a given (password, salt) pair.
	Hash(password, salt string) (string, error)

	// Check reports whether the candidate password reproduces the stored hash
	// under the stored salt.
	Check(password, hash, salt string) bool

	// ValidatePasswordStrength enforces the password policy: at least 8
	// characters, one uppercase letter, one lowercase letter, one digit,
	// alphanumeric only.
	ValidatePasswordStrength(password string) error
}
