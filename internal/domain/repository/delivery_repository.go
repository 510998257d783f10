// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"
	"time"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for delivery persistence.
var (
	// ErrDeliveryNotFound is returned when a delivery is not found.
	ErrDeliveryNotFound = errors.New("delivery not found")
	// ErrDeliveryNotAwaiting is returned when a pickup is attempted on a
	// delivery that is no longer in the awaiting state.
	ErrDeliveryNotAwaiting = errors.New("delivery is not awaiting pickup")
)

// DeliverySearchFilter narrows front-desk delivery searches.
type DeliverySearchFilter struct {
	UnitID *uuid.UUID            // Restrict to one unit.
	Status entity.DeliveryStatus // Restrict to one status; empty means any.
	Limit  int                   // Page size; zero means no limit.
	Offset int                   // Page offset.
}

// DeliveryRepository defines the interface for delivery-related database operations.
type DeliveryRepository interface {
	// CreateDelivery persists a new delivery in the awaiting state.
	CreateDelivery(ctx context.Context, delivery *entity.Delivery) error

	// FindDeliveryByID retrieves a delivery by its unique ID.
	FindDeliveryByID(ctx context.Context, id uuid.UUID) (*entity.Delivery, error)

	// ListDeliveriesByUnit retrieves a unit's deliveries, newest first.
	ListDeliveriesByUnit(ctx context.Context, unitID uuid.UUID, limit, offset int) ([]*entity.Delivery, error)

	// SearchDeliveries retrieves deliveries matching the filter, newest first.
	SearchDeliveries(ctx context.Context, filter DeliverySearchFilter) ([]*entity.Delivery, error)

	// RegisterPickup performs the single awaiting -> picked_up transition.
	// The update is conditional on the row still being awaiting; when the
	// condition fails the method returns ErrDeliveryNotAwaiting (or
	// ErrDeliveryNotFound if the row does not exist) and writes nothing, so a
	// concurrent double submission can never overwrite an earlier pickup.
	RegisterPickup(ctx context.Context, id uuid.UUID, pickedUpByName, pickupPhotoURL string, pickedUpAt time.Time) error
}
