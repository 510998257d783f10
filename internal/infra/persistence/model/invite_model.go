package model

import (
	"time"

	"github.com/google/uuid"
)

// InviteTokenModel mirrors the 'invite_tokens' table.
type InviteTokenModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email     string     `gorm:"type:varchar(255);not null;index"`
	Token     string     `gorm:"type:varchar(255);unique;not null"`
	Role      string     `gorm:"type:varchar(20);not null;default:'resident'"`
	UnitID    *uuid.UUID `gorm:"type:uuid"`
	ExpiresAt time.Time  `gorm:"not null"`
	Used      bool       `gorm:"not null;default:false"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (InviteTokenModel) TableName() string {
	return "invite_tokens"
}
