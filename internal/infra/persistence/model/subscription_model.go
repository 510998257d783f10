package model

import (
	"time"

	"github.com/google/uuid"
)

// PushSubscriptionModel mirrors the 'subscriptions' table.
// SubscriptionJSON stores the raw browser push descriptor (endpoint plus keys).
type PushSubscriptionModel struct {
	ID               uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID           uuid.UUID `gorm:"type:uuid;not null;index"`
	SubscriptionJSON string    `gorm:"column:subscription;type:jsonb;not null"`
	CreatedAt        time.Time
}

// TableName explicitly sets the table name for GORM.
func (PushSubscriptionModel) TableName() string {
	return "subscriptions"
}
