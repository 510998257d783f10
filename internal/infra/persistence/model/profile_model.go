package model

import (
	"time"

	"github.com/google/uuid"
)

// ProfileModel mirrors the 'profiles' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type ProfileModel struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID  `gorm:"type:uuid;unique;not null"`
	FullName  string     `gorm:"type:varchar(255);not null"`
	Phone     string     `gorm:"type:varchar(30)"`
	Role      string     `gorm:"type:varchar(20);not null;index"`
	LastLogin *time.Time
	DeletedAt *time.Time `gorm:"index"`
	DeletedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (ProfileModel) TableName() string {
	return "profiles"
}
