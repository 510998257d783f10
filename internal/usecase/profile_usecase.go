// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// ProfileOutput pairs a profile with the screen its role resolves to.
type ProfileOutput struct {
	Profile *entity.Profile
	Screen  entity.Screen
}

// ProfileUsecase defines the interface for profile directory operations.
type ProfileUsecase interface {
	// GetMyProfile retrieves the caller's profile and resolves the screen
	// their role routes to after sign-in.
	GetMyProfile(ctx context.Context, userID uuid.UUID) (*ProfileOutput, error)

	// ListProfilesByRole retrieves all active profiles with the given role.
	ListProfilesByRole(ctx context.Context, role entity.Role) ([]*entity.Profile, error)

	// RemoveProfile soft-deletes a profile, recording the acting admin.
	// The removed profile drops out of every future notification fan-out
	// while its delivery and audit history stays intact.
	RemoveProfile(ctx context.Context, actorUserID, profileID uuid.UUID) error
}
