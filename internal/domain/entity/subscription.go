// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// WebPushKeys holds the client encryption keys of a browser push subscription.
type WebPushKeys struct {
	P256dh string `json:"p256dh"` // Client public key for payload encryption.
	Auth   string `json:"auth"`   // Client authentication secret.
}

// WebPushDescriptor is the browser push endpoint descriptor produced by the
// PushManager API. It is stored verbatim and replayed to the push service.
type WebPushDescriptor struct {
	Endpoint string      `json:"endpoint"` // Push-service URL for this browser/device.
	Keys     WebPushKeys `json:"keys"`     // Encryption keys for the payload.
}

// PushSubscription represents a user's opt-in browser endpoint for push
// notifications. At most one subscription exists per user: subscribing again
// replaces any previous descriptor.
type PushSubscription struct {
	ID           uuid.UUID         `json:"id"`           // The Global Unique Identifier (GUID) for the subscription.
	UserID       uuid.UUID         `json:"user_id"`      // The account that opted in.
	Subscription WebPushDescriptor `json:"subscription"` // The opaque browser endpoint descriptor.
	CreatedAt    time.Time         `json:"created_at"`   // Timestamp of when the subscription was registered.
}
