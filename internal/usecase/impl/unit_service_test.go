package impl

import (
	"context"
	"testing"
	"time"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	mockRepo "easy/internal/mocks/repository"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUnitServiceForTest(t *testing.T) (usecase.UnitUsecase, *mockRepo.MockUnitRepository, *mockRepo.MockProfileRepository, *mockRepo.MockAuditRepository) {
	t.Helper()

	mockUnitRepo := mockRepo.NewMockUnitRepository(t)
	mockProfileRepo := mockRepo.NewMockProfileRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditRepository(t)

	svc := NewUnitService(UnitServiceParams{
		UnitRepo:    mockUnitRepo,
		ProfileRepo: mockProfileRepo,
		AuditRepo:   mockAuditRepo,
		Logger:      newTestLogger(),
	})

	return svc, mockUnitRepo, mockProfileRepo, mockAuditRepo
}

func TestUnitService_CreateUnit_DerivesLabel(t *testing.T) {
	svc, mockUnitRepo, _, mockAuditRepo := newUnitServiceForTest(t)

	ctx := context.Background()
	actorID := uuid.New()

	mockUnitRepo.EXPECT().
		CreateUnit(ctx, mock.AnythingOfType("*entity.Unit")).
		RunAndReturn(func(_ context.Context, unit *entity.Unit) error {
			unit.ID = uuid.New()
			return nil
		})
	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	unit, err := svc.CreateUnit(ctx, actorID, &usecase.CreateUnitInput{
		Block:  "A",
		Floor:  10,
		Number: 101,
	})
	require.NoError(t, err)
	assert.Equal(t, "Bloco A - 101", unit.Label)
}

func TestUnitService_CreateUnit_NoBlock(t *testing.T) {
	svc, mockUnitRepo, _, mockAuditRepo := newUnitServiceForTest(t)

	ctx := context.Background()

	mockUnitRepo.EXPECT().CreateUnit(ctx, mock.AnythingOfType("*entity.Unit")).Return(nil)
	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	unit, err := svc.CreateUnit(ctx, uuid.New(), &usecase.CreateUnitInput{Number: 12})
	require.NoError(t, err)
	assert.Equal(t, "Unidade 12", unit.Label)
}

func TestUnitService_CreateUnit_InvalidNumber(t *testing.T) {
	svc, _, _, _ := newUnitServiceForTest(t)

	_, err := svc.CreateUnit(context.Background(), uuid.New(), &usecase.CreateUnitInput{Number: 0})
	require.Error(t, err)
}

func TestUnitService_AddResident_Success(t *testing.T) {
	svc, mockUnitRepo, mockProfileRepo, mockAuditRepo := newUnitServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()
	profileID := uuid.New()

	mockUnitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(&entity.Unit{ID: unitID}, nil)
	mockProfileRepo.EXPECT().
		FindProfileByID(ctx, profileID).
		Return(&entity.Profile{ID: profileID, Role: entity.RoleResident}, nil)
	mockUnitRepo.EXPECT().
		CreateUnitProfile(ctx, mock.AnythingOfType("*entity.UnitProfile")).
		Return(nil)
	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	link, err := svc.AddResident(ctx, uuid.New(), &usecase.AddResidentInput{
		UnitID:    unitID,
		ProfileID: profileID,
		Type:      entity.OccupancyOwner,
	})
	require.NoError(t, err)
	assert.Equal(t, unitID, link.UnitID)
	assert.Equal(t, profileID, link.ProfileID)
	assert.True(t, link.Active)
}

func TestUnitService_AddResident_DeletedProfile(t *testing.T) {
	svc, mockUnitRepo, mockProfileRepo, _ := newUnitServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()
	profileID := uuid.New()
	deletedAt := time.Now()

	mockUnitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(&entity.Unit{ID: unitID}, nil)
	mockProfileRepo.EXPECT().
		FindProfileByID(ctx, profileID).
		Return(&entity.Profile{ID: profileID, DeletedAt: &deletedAt}, nil)

	_, err := svc.AddResident(ctx, uuid.New(), &usecase.AddResidentInput{
		UnitID:    unitID,
		ProfileID: profileID,
		Type:      entity.OccupancyTenant,
	})
	require.ErrorIs(t, err, domainerrors.ErrProfileDeleted)
}

func TestUnitService_AddResident_InvalidOccupancyType(t *testing.T) {
	svc, _, _, _ := newUnitServiceForTest(t)

	_, err := svc.AddResident(context.Background(), uuid.New(), &usecase.AddResidentInput{
		UnitID:    uuid.New(),
		ProfileID: uuid.New(),
		Type:      entity.OccupancyType("squatter"),
	})
	require.Error(t, err)
}

func TestUnitService_RemoveResident_NotLinked(t *testing.T) {
	svc, mockUnitRepo, _, _ := newUnitServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()
	profileID := uuid.New()

	mockUnitRepo.EXPECT().
		DeactivateUnitProfile(ctx, unitID, profileID).
		Return(repository.ErrUnitProfileNotFound)

	err := svc.RemoveResident(ctx, uuid.New(), unitID, profileID)
	require.ErrorIs(t, err, domainerrors.ErrOccupancyNotFound)
}

func TestUnitService_RemoveResident_Success(t *testing.T) {
	svc, mockUnitRepo, _, mockAuditRepo := newUnitServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()
	profileID := uuid.New()

	mockUnitRepo.EXPECT().DeactivateUnitProfile(ctx, unitID, profileID).Return(nil)
	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	err := svc.RemoveResident(ctx, uuid.New(), unitID, profileID)
	require.NoError(t, err)
}

func TestUnitService_ListUnitResidents_UnknownUnit(t *testing.T) {
	svc, mockUnitRepo, _, _ := newUnitServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()

	mockUnitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(nil, repository.ErrUnitNotFound)

	_, err := svc.ListUnitResidents(ctx, unitID)
	require.ErrorIs(t, err, domainerrors.ErrUnitNotFound)
}
