package postgres

import (
	"context"
	"os"
	"testing"
	"time"

	"easy/internal/domain/entity"
	"easy/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgDriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// openTestDB connects to the database named by TEST_POSTGRES_DSN. The target
// must be disposable: the test creates and drops its own tables.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("TEST_POSTGRES_DSN not set, skipping database integration test")
	}

	db, err := gorm.Open(pgDriver.Open(dsn), &gorm.Config{SkipDefaultTransaction: true})
	require.NoError(t, err)

	// gen_random_uuid is built in since PostgreSQL 13. The shim keeps the
	// model ID defaults working without the production uuid_generate_v7
	// migration.
	require.NoError(t, db.Exec(
		"CREATE OR REPLACE FUNCTION uuid_generate_v7() RETURNS uuid AS 'SELECT gen_random_uuid()' LANGUAGE sql",
	).Error)

	require.NoError(t, db.AutoMigrate(
		&model.UnitModel{},
		&model.ProfileModel{},
		&model.UnitProfileModel{},
	))

	t.Cleanup(func() {
		_ = db.Migrator().DropTable(
			&model.UnitProfileModel{},
			&model.ProfileModel{},
			&model.UnitModel{},
		)
	})

	return db
}

// seedOccupant creates a resident profile with an active occupancy in the
// unit and returns the profile and user IDs.
func seedOccupant(t *testing.T, db *gorm.DB, unitID uuid.UUID, fullName string) (profileID, userID uuid.UUID) {
	t.Helper()

	profile := &model.ProfileModel{
		ID:       uuid.New(),
		UserID:   uuid.New(),
		FullName: fullName,
		Role:     string(entity.RoleResident),
	}
	require.NoError(t, db.Create(profile).Error)

	link := &model.UnitProfileModel{
		ID:        uuid.New(),
		UnitID:    unitID,
		ProfileID: profile.ID,
		Type:      string(entity.OccupancyTenant),
		Active:    true,
	}
	require.NoError(t, db.Create(link).Error)

	return profile.ID, profile.UserID
}

func softDeleteProfile(t *testing.T, db *gorm.DB, profileID uuid.UUID) {
	t.Helper()

	require.NoError(t, db.Model(&model.ProfileModel{}).
		Where("id = ?", profileID).
		Update("deleted_at", time.Now()).Error)
}

func TestUnitRepository_FindActiveResidents_Integration(t *testing.T) {
	db := openTestDB(t)
	repo := NewUnitRepository(db)
	ctx := context.Background()

	unit := &entity.Unit{Block: "A", Floor: 1, Number: 101, Label: "Bloco A - 101"}
	require.NoError(t, repo.CreateUnit(ctx, unit))

	otherUnit := &entity.Unit{Number: 12, Label: "Unidade 12"}
	require.NoError(t, repo.CreateUnit(ctx, otherUnit))

	anaProfileID, anaUserID := seedOccupant(t, db, unit.ID, "Ana Lima")

	brunoProfileID, _ := seedOccupant(t, db, unit.ID, "Bruno Costa")
	softDeleteProfile(t, db, brunoProfileID)

	carlaProfileID, _ := seedOccupant(t, db, unit.ID, "Carla Dias")
	require.NoError(t, repo.DeactivateUnitProfile(ctx, unit.ID, carlaProfileID))

	seedOccupant(t, db, otherUnit.ID, "Diego Rocha")

	// Only the live profile with an active occupancy in this unit qualifies:
	// the soft-deleted profile, the deactivated occupancy and the neighbour
	// unit's resident all drop out.
	residents, err := repo.FindActiveResidents(ctx, unit.ID)
	require.NoError(t, err)
	require.Len(t, residents, 1)
	assert.Equal(t, anaProfileID, residents[0].ProfileID)
	assert.Equal(t, anaUserID, residents[0].UserID)
	assert.Equal(t, "Ana Lima", residents[0].FullName)

	// Removing the last resident empties the recipient set from that moment
	// on; an empty set is a valid result, not an error.
	softDeleteProfile(t, db, anaProfileID)

	residents, err = repo.FindActiveResidents(ctx, unit.ID)
	require.NoError(t, err)
	assert.Empty(t, residents)
}
