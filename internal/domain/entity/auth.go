// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Credential holds the local email/password identity of an account.
type Credential struct {
	ID           uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the credential.
	UserID       uuid.UUID `json:"user_id"`    // The account this credential authenticates.
	Email        string    `json:"email"`      // Login identifier, unique across credentials.
	PasswordHash string    `json:"-"`          // bcrypt hash of the password. Never serialized.
	CreatedAt    time.Time `json:"created_at"` // Timestamp of when the credential was created.
}

// RefreshToken represents a long-lived session token stored server-side so
// that sessions can be revoked.
type RefreshToken struct {
	ID        uuid.UUID `json:"id"`         // The Global Unique Identifier (GUID) for the token record.
	UserID    uuid.UUID `json:"user_id"`    // The account the session belongs to.
	Token     string    `json:"-"`          // The signed refresh token. Never serialized.
	ExpiresAt time.Time `json:"expires_at"` // When the session expires.
	CreatedAt time.Time `json:"created_at"` // Timestamp of when the session started.
}
