// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// NotificationTypeDelivery marks notifications produced by the delivery fan-out.
const NotificationTypeDelivery = "delivery"

// Notification represents a per-recipient notification record. One row is
// created per (delivery, resident) pair; read state is independent per
// recipient. A notification is immutable except for ReadAt, set once by the
// owning user.
type Notification struct {
	ID        uuid.UUID         `json:"id"`                // The Global Unique Identifier (GUID) for the notification.
	UserID    uuid.UUID         `json:"user_id"`           // The recipient account.
	Type      string            `json:"type"`              // The notification category, e.g. "delivery".
	Title     string            `json:"title"`             // Short headline shown to the user.
	Body      string            `json:"body,omitempty"`    // Optional longer text.
	Data      map[string]string `json:"data,omitempty"`    // Structured payload (delivery_id, unit_id, unit_label).
	PushSent  bool              `json:"push_sent"`         // Whether a push dispatch attempt succeeded for this record.
	ReadAt    *time.Time        `json:"read_at,omitempty"` // When the owner marked it read; nil means unread.
	CreatedAt time.Time         `json:"created_at"`        // Timestamp of when the notification was created.
}

// IsRead reports whether the owner has marked the notification read.
func (n *Notification) IsRead() bool {
	return n.ReadAt != nil
}
