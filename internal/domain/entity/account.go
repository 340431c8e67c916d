// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import "time"

// Account is the core entity in the system, representing a registered person.
// The password is stored only as an argon2id hash next to its per-account salt;
// plaintext never survives account construction.
type Account struct {
	ID                 int64     // Auto-incrementing primary key.
	Name               string    // Given name.
	Surname            string    // Family name.
	Email              string    // Unique login identifier.
	PasswordHash       string    // Argon2id hash of the password, derived with Salt.
	Salt               string    // Per-account random salt, generated once at registration.
	IsAdmin            bool      // Grants access to the admin user-management routes.
	ProfileImage       string    // Opaque base64-encoded image payload; empty when unset.
	ResetPasswordToken string    // Single-use reset credential; empty outside an active reset flow.
	CreatedAt          time.Time // Timestamp of account creation.
	UpdatedAt          time.Time // Timestamp of the last modification.
}

// HasPendingReset reports whether a password reset has been requested and not
// yet consumed.
func (a *Account) HasPendingReset() bool {
	return a.ResetPasswordToken != ""
}

// ClearResetToken consumes the stored reset credential so a second reset
// attempt with the same token misses the lookup.
func (a *Account) ClearResetToken() {
	a.ResetPasswordToken = ""
}
