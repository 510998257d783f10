// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryStatus represents the lifecycle state of a delivery.
// The only transition is awaiting -> picked_up, exactly once, never reversed.
type DeliveryStatus string

const (
	// DeliveryAwaiting indicates a parcel waiting at the front desk.
	DeliveryAwaiting DeliveryStatus = "awaiting"
	// DeliveryPickedUp indicates a parcel already collected by a resident.
	DeliveryPickedUp DeliveryStatus = "picked_up"
)

// String returns the string representation of the DeliveryStatus.
func (s DeliveryStatus) String() string {
	return string(s)
}

// IsValid checks if the DeliveryStatus is a valid value.
func (s DeliveryStatus) IsValid() bool {
	switch s {
	case DeliveryAwaiting, DeliveryPickedUp:
		return true
	default:
		return false
	}
}

// Delivery represents a parcel-arrival record tracked from intake to
// resident pickup. Deliveries are never deleted.
type Delivery struct {
	ID              uuid.UUID      `json:"id"`                          // The Global Unique Identifier (GUID) for the delivery.
	UnitID          uuid.UUID      `json:"unit_id"`                     // The unit this parcel belongs to.
	CreatedByUserID uuid.UUID      `json:"created_by_user_id"`          // The front-desk account that registered the parcel.
	PhotoURL        string         `json:"photo_url,omitempty"`         // Optional photo taken at intake (external blob URL).
	Obs             string         `json:"obs,omitempty"`               // Free-text observation, e.g. "2 boxes".
	Status          DeliveryStatus `json:"status"`                      // Current lifecycle state.
	PickedUpAt      *time.Time     `json:"picked_up_at,omitempty"`      // Set together with the picked_up transition.
	PickedUpByName  string         `json:"picked_up_by_name,omitempty"` // Name of the person who collected the parcel.
	PickupPhotoURL  string         `json:"pickup_photo_url,omitempty"`  // Optional evidentiary photo taken at pickup.
	CreatedAt       time.Time      `json:"created_at"`                  // Timestamp of when the parcel was registered.
}

// IsAwaiting reports whether the delivery is still waiting for pickup.
func (d *Delivery) IsAwaiting() bool {
	return d.Status == DeliveryAwaiting
}
