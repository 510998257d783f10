package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryModel mirrors the 'deliveries' table.
type DeliveryModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UnitID          uuid.UUID `gorm:"type:uuid;not null;index"`
	CreatedByUserID uuid.UUID `gorm:"type:uuid;not null"`
	PhotoURL        string    `gorm:"type:text"`
	Obs             string    `gorm:"type:text"`
	Status          string    `gorm:"type:varchar(20);not null;default:'awaiting';index"`
	PickedUpAt      *time.Time
	PickedUpByName  string    `gorm:"type:varchar(255)"`
	PickupPhotoURL  string    `gorm:"type:text"`
	CreatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (DeliveryModel) TableName() string {
	return "deliveries"
}
