package model

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogModel mirrors the append-only 'audit_logs' table.
type AuditLogModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	ActorUserID *uuid.UUID `gorm:"type:uuid;index"`
	TableName_  string     `gorm:"column:table_name;type:varchar(63);not null"`
	RecordID    *uuid.UUID `gorm:"type:uuid"`
	Action      string     `gorm:"type:varchar(30);not null"`
	PayloadJSON string     `gorm:"column:payload;type:jsonb"`
	CreatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (AuditLogModel) TableName() string {
	return "audit_logs"
}
