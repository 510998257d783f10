package model

import (
	"time"

	"github.com/google/uuid"
)

// UnitModel mirrors the 'units' table.
type UnitModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Block     string    `gorm:"type:varchar(20)"`
	Floor     int       `gorm:"not null;default:0"`
	Number    int       `gorm:"not null"`
	Label     string    `gorm:"type:varchar(50);not null"`
	CreatedAt time.Time

	UnitProfiles []UnitProfileModel `gorm:"foreignKey:UnitID"`
}

// TableName explicitly sets the table name for GORM.
func (UnitModel) TableName() string {
	return "units"
}

// UnitProfileModel mirrors the 'unit_profiles' table linking residents to units.
type UnitProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UnitID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_unit_profiles_unit_profile"`
	ProfileID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_unit_profiles_unit_profile"`
	Type      string    `gorm:"type:varchar(10);not null;default:'owner'"`
	Active    bool      `gorm:"not null;default:true;index"`
	CreatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (UnitProfileModel) TableName() string {
	return "unit_profiles"
}
