// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrRefreshTokenNotFound is returned when a refresh token is not found.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository defines the interface for session-token database operations.
type RefreshTokenRepository interface {
	// SaveRefreshToken persists a new refresh token for a session.
	SaveRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshToken retrieves a stored token by its signed value.
	FindRefreshToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// DeleteRefreshToken revokes a single session token.
	DeleteRefreshToken(ctx context.Context, token string) error

	// DeleteRefreshTokensByUser revokes all sessions of a user.
	DeleteRefreshTokensByUser(ctx context.Context, userID uuid.UUID) error
}
