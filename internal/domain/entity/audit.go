// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLog records a mutating operation performed by staff. Entries are
// append-only and written best-effort alongside the primary write.
type AuditLog struct {
	ID          uuid.UUID         `json:"id"`                      // The Global Unique Identifier (GUID) for the entry.
	ActorUserID *uuid.UUID        `json:"actor_user_id,omitempty"` // The account that performed the action, if known.
	TableName   string            `json:"table_name"`              // The table the action touched.
	RecordID    *uuid.UUID        `json:"record_id,omitempty"`     // The affected row, if a single one.
	Action      string            `json:"action"`                  // The action verb, e.g. "insert", "soft_delete".
	Payload     map[string]string `json:"payload,omitempty"`       // Extra context about the change.
	CreatedAt   time.Time         `json:"created_at"`              // Timestamp of when the entry was recorded.
}
