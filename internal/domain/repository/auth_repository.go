// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for credential persistence.
var (
	// ErrCredentialNotFound is returned when no credential matches.
	ErrCredentialNotFound = errors.New("credential not found")
	// ErrEmailAlreadyRegistered is returned when the email is taken.
	ErrEmailAlreadyRegistered = errors.New("email already registered")
)

// AuthRepository defines the interface for credential database operations.
type AuthRepository interface {
	// CreateCredential persists a new email/password credential.
	CreateCredential(ctx context.Context, credential *entity.Credential) error

	// FindCredentialByEmail retrieves a credential by its login email.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)

	// FindCredentialByUserID retrieves the credential of an account.
	FindCredentialByUserID(ctx context.Context, userID uuid.UUID) (*entity.Credential, error)
}
