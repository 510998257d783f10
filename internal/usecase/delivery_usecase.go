// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// RegisterDeliveryInput defines the data required to register a parcel at the front desk.
type RegisterDeliveryInput struct {
	UnitID          uuid.UUID
	CreatedByUserID uuid.UUID
	PhotoURL        string
	Obs             string
}

// RegisterPickupInput defines the data required to hand a parcel over.
type RegisterPickupInput struct {
	DeliveryID       uuid.UUID
	RecordedByUserID uuid.UUID
	PickedUpByName   string
	PickupPhotoURL   string
}

// ListUnitDeliveriesInput scopes a unit's delivery history to its caller.
// Residents may only read units they actively occupy; staff roles see any unit.
type ListUnitDeliveriesInput struct {
	UnitID       uuid.UUID
	CallerUserID uuid.UUID
	CallerRoles  entity.Roles
	Limit        int
	Offset       int
}

// SearchDeliveriesInput narrows the front-desk delivery search.
type SearchDeliveriesInput struct {
	UnitID *uuid.UUID
	Status entity.DeliveryStatus
	Limit  int
	Offset int
}

// DeliveryUsecase defines the interface for delivery lifecycle operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type DeliveryUsecase interface {
	// RegisterDelivery records an arrived parcel and triggers the
	// notification fan-out. The delivery is committed before the event is
	// published; a publish failure never fails the registration.
	RegisterDelivery(ctx context.Context, input *RegisterDeliveryInput) (*entity.Delivery, error)

	// GetDelivery retrieves a single delivery.
	GetDelivery(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// ListUnitDeliveries retrieves a unit's deliveries, newest first. A
	// resident caller must hold an active occupancy in the unit.
	ListUnitDeliveries(ctx context.Context, input *ListUnitDeliveriesInput) ([]*entity.Delivery, error)

	// SearchDeliveries retrieves deliveries matching the filter, newest first.
	SearchDeliveries(ctx context.Context, input *SearchDeliveriesInput) ([]*entity.Delivery, error)

	// RegisterPickup performs the single awaiting -> picked_up transition and
	// returns the updated delivery. A delivery already picked up yields a
	// conflict error; the original pickup record is never overwritten.
	RegisterPickup(ctx context.Context, input *RegisterPickupInput) (*entity.Delivery, error)
}
