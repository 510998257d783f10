// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// CreateUnitInput defines the data required to register a unit.
type CreateUnitInput struct {
	Block  string
	Floor  int
	Number int
}

// AddResidentInput links an existing profile to a unit.
type AddResidentInput struct {
	UnitID    uuid.UUID
	ProfileID uuid.UUID
	Type      entity.OccupancyType
}

// UnitUsecase defines the interface for unit directory management.
type UnitUsecase interface {
	// CreateUnit registers a unit and derives its display label once.
	CreateUnit(ctx context.Context, actorUserID uuid.UUID, input *CreateUnitInput) (*entity.Unit, error)

	// GetUnit retrieves a single unit.
	GetUnit(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// ListUnits retrieves all units ordered by block and number.
	ListUnits(ctx context.Context) ([]*entity.Unit, error)

	// AddResident links a profile to a unit as an active occupancy.
	AddResident(ctx context.Context, actorUserID uuid.UUID, input *AddResidentInput) (*entity.UnitProfile, error)

	// RemoveResident deactivates an occupancy; history is preserved.
	RemoveResident(ctx context.Context, actorUserID, unitID, profileID uuid.UUID) error

	// ListUnitResidents retrieves the active, non-deleted residents of a unit.
	ListUnitResidents(ctx context.Context, unitID uuid.UUID) ([]*entity.UnitResident, error)
}
