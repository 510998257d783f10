// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for invite persistence.
var (
	// ErrInviteNotFound is returned when an invite token is not found.
	ErrInviteNotFound = errors.New("invite token not found")
	// ErrInviteAlreadyUsed is returned when a token was already redeemed.
	ErrInviteAlreadyUsed = errors.New("invite token already used")
)

// InviteRepository defines the interface for invite-token database operations.
type InviteRepository interface {
	// CreateInvite persists a new one-time invite token.
	CreateInvite(ctx context.Context, invite *entity.InviteToken) error

	// FindInviteByID retrieves an invite by its unique ID.
	FindInviteByID(ctx context.Context, id uuid.UUID) (*entity.InviteToken, error)

	// FindInviteByToken retrieves an invite by its opaque token value.
	FindInviteByToken(ctx context.Context, token string) (*entity.InviteToken, error)

	// MarkInviteUsed flags a token as redeemed. The update is conditional on
	// used being false; ErrInviteAlreadyUsed is returned otherwise.
	MarkInviteUsed(ctx context.Context, id uuid.UUID) error
}
