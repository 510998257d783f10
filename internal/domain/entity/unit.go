// Package entity contains the core business objects of the project.
package entity

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Unit represents an addressable apartment or office within the managed property.
type Unit struct {
	ID        uuid.UUID `json:"id"`              // The Global Unique Identifier (GUID) for the unit.
	Block     string    `json:"block,omitempty"` // Optional block label, e.g. "A".
	Floor     int       `json:"floor,omitempty"` // Optional floor number.
	Number    int       `json:"number"`          // The unit number within its block.
	Label     string    `json:"label"`           // Denormalized display label, derived from block+number at creation.
	CreatedAt time.Time `json:"created_at"`      // Timestamp of when this unit was registered.
}

// BuildUnitLabel derives the display label for a unit from its block and number.
// The label is a display cache: it is computed once at creation time and is
// deliberately not recomputed when the unit is later updated.
func BuildUnitLabel(block string, number int) string {
	if block == "" {
		return fmt.Sprintf("Unidade %d", number)
	}

	return fmt.Sprintf("Bloco %s - %d", block, number)
}

// OccupancyType represents the kind of occupancy a profile has in a unit.
type OccupancyType string

const (
	// OccupancyOwner indicates the profile owns the unit.
	OccupancyOwner OccupancyType = "owner"
	// OccupancyTenant indicates the profile rents the unit.
	OccupancyTenant OccupancyType = "tenant"
)

// IsValid checks if the OccupancyType is a valid value.
func (t OccupancyType) IsValid() bool {
	switch t {
	case OccupancyOwner, OccupancyTenant:
		return true
	default:
		return false
	}
}

// UnitProfile links a profile to a unit it occupies. Active=false marks a
// historical occupancy that must not receive delivery notifications.
type UnitProfile struct {
	ID        uuid.UUID     `json:"id"`         // The Global Unique Identifier (GUID) for the link.
	UnitID    uuid.UUID     `json:"unit_id"`    // The unit being occupied.
	ProfileID uuid.UUID     `json:"profile_id"` // The occupying profile.
	Type      OccupancyType `json:"type"`       // Owner or tenant.
	Active    bool          `json:"active"`     // Whether this occupancy is current.
	CreatedAt time.Time     `json:"created_at"` // Timestamp of when the link was created.
}

// UnitResident is the projection of an active, non-deleted resident of a unit
// used by the notification fan-out to resolve recipients.
type UnitResident struct {
	ProfileID uuid.UUID `json:"profile_id"` // The resident's profile ID.
	UserID    uuid.UUID `json:"user_id"`    // The resident's account ID, the notification recipient.
	FullName  string    `json:"full_name"`  // The resident's display name.
}
