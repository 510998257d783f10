// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for unit persistence.
var (
	// ErrUnitNotFound is returned when a unit is not found.
	ErrUnitNotFound = errors.New("unit not found")
	// ErrUnitProfileNotFound is returned when a unit-profile link is not found.
	ErrUnitProfileNotFound = errors.New("unit profile not found")
)

// UnitRepository defines the interface for unit and occupancy database operations.
type UnitRepository interface {
	// CreateUnit persists a new unit. The label must already be derived.
	CreateUnit(ctx context.Context, unit *entity.Unit) error

	// FindUnitByID retrieves a unit by its unique ID.
	FindUnitByID(ctx context.Context, id uuid.UUID) (*entity.Unit, error)

	// ListUnits retrieves all units ordered by block and number.
	ListUnits(ctx context.Context) ([]*entity.Unit, error)

	// CreateUnitProfile links a profile to a unit as an active occupancy.
	CreateUnitProfile(ctx context.Context, link *entity.UnitProfile) error

	// DeactivateUnitProfile marks an occupancy inactive. Historical links are
	// kept so past deliveries stay attributable.
	DeactivateUnitProfile(ctx context.Context, unitID, profileID uuid.UUID) error

	// ListUnitProfiles retrieves every occupancy link of a unit, active or not.
	ListUnitProfiles(ctx context.Context, unitID uuid.UUID) ([]*entity.UnitProfile, error)

	// FindActiveResidents resolves the notification recipient set of a unit:
	// profiles with an active occupancy whose profile is not soft-deleted.
	// An empty result is valid and must not be treated as an error.
	FindActiveResidents(ctx context.Context, unitID uuid.UUID) ([]*entity.UnitResident, error)
}
