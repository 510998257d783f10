// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// Profile represents a person known to the condominium: a resident,
// front-desk staff or an administrator. There is exactly one profile per
// authenticated account. Profiles are soft-deleted, never removed.
type Profile struct {
	ID        uuid.UUID  `json:"id"`                   // The Global Unique Identifier (GUID) for the profile.
	UserID    uuid.UUID  `json:"user_id"`              // The ID of the authenticated account that owns this profile.
	FullName  string     `json:"full_name"`            // The person's display name.
	Phone     string     `json:"phone,omitempty"`      // Optional contact phone number.
	Role      Role       `json:"role"`                 // The access level of this profile.
	LastLogin *time.Time `json:"last_login,omitempty"` // Timestamp of the most recent sign-in.
	DeletedAt *time.Time `json:"deleted_at,omitempty"` // Soft-delete timestamp; nil means active.
	DeletedBy *uuid.UUID `json:"deleted_by,omitempty"` // The account that performed the soft delete.
	CreatedAt time.Time  `json:"created_at"`           // Timestamp of when this profile was created.
}

// IsDeleted reports whether the profile has been soft-deleted.
// Deleted profiles must never receive new notifications.
func (p *Profile) IsDeleted() bool {
	return p.DeletedAt != nil
}
