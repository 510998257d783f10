// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// InviteToken is a one-time credential that bootstraps a resident account.
// The admin creates it for an email address; the invitee redeems it once to
// create a profile linked to the invited unit.
type InviteToken struct {
	ID        uuid.UUID  `json:"id"`                // The Global Unique Identifier (GUID) for the invite.
	Email     string     `json:"email"`             // Address the invite was sent to.
	Token     string     `json:"token"`             // The opaque one-time token carried in the invite link.
	Role      Role       `json:"role"`              // Role granted on acceptance.
	UnitID    *uuid.UUID `json:"unit_id,omitempty"` // Unit the invitee will occupy; nil for staff invites.
	ExpiresAt time.Time  `json:"expires_at"`        // After this instant the token can no longer be redeemed.
	Used      bool       `json:"used"`              // Whether the token has already been redeemed.
	CreatedAt time.Time  `json:"created_at"`        // Timestamp of when the invite was created.
}

// IsExpired reports whether the token can no longer be redeemed.
func (t *InviteToken) IsExpired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}
