// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrProfileNotFound is returned when a profile is not found.
var ErrProfileNotFound = errors.New("profile not found")

// ProfileRepository defines the interface for profile-related database operations.
type ProfileRepository interface {
	// CreateProfile persists a new profile.
	CreateProfile(ctx context.Context, profile *entity.Profile) error

	// FindProfileByID retrieves a profile by its unique ID, including soft-deleted ones.
	FindProfileByID(ctx context.Context, id uuid.UUID) (*entity.Profile, error)

	// FindProfileByUserID retrieves the non-deleted profile owned by an account.
	FindProfileByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error)

	// ListProfilesByRole retrieves all non-deleted profiles with the given role.
	ListProfilesByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error)

	// SoftDeleteProfile marks a profile deleted, recording who removed it.
	// Soft-deleted profiles are excluded from all future notification fan-outs.
	SoftDeleteProfile(ctx context.Context, id uuid.UUID, deletedBy uuid.UUID) error

	// UpdateLastLogin stamps the profile's most recent sign-in time.
	UpdateLastLogin(ctx context.Context, userID uuid.UUID) error
}
