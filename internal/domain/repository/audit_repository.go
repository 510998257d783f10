// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"easy/internal/domain/entity"
)

// AuditRepository defines the interface for audit-log database operations.
// Entries are append-only; there is no read path in this service.
type AuditRepository interface {
	// CreateAuditLog appends a single audit entry.
	CreateAuditLog(ctx context.Context, log *entity.AuditLog) error
}
