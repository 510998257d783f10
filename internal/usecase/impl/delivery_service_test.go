package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	mockRepo "easy/internal/mocks/repository"
	mockSvc "easy/internal/mocks/service"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newDeliveryServiceForTest(t *testing.T) (usecase.DeliveryUsecase, *mockRepo.MockDeliveryRepository, *mockRepo.MockUnitRepository, *mockRepo.MockAuditRepository, *mockSvc.MockEventPublisher) {
	t.Helper()

	mockDeliveryRepo := mockRepo.NewMockDeliveryRepository(t)
	mockUnitRepo := mockRepo.NewMockUnitRepository(t)
	mockAuditRepo := mockRepo.NewMockAuditRepository(t)
	mockPublisher := mockSvc.NewMockEventPublisher(t)

	service := NewDeliveryService(DeliveryServiceParams{
		DeliveryRepo:   mockDeliveryRepo,
		UnitRepo:       mockUnitRepo,
		AuditRepo:      mockAuditRepo,
		EventPublisher: mockPublisher,
		Logger:         newTestLogger(),
	})

	return service, mockDeliveryRepo, mockUnitRepo, mockAuditRepo, mockPublisher
}

func TestDeliveryService_RegisterDelivery_Success(t *testing.T) {
	service, mockDeliveryRepo, mockUnitRepo, mockAuditRepo, mockPublisher := newDeliveryServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()
	staffID := uuid.New()

	unit := &entity.Unit{ID: unitID, Block: "A", Number: 101, Label: "Bloco A - 101"}

	mockUnitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(unit, nil)

	mockDeliveryRepo.EXPECT().
		CreateDelivery(ctx, mock.AnythingOfType("*entity.Delivery")).
		RunAndReturn(func(_ context.Context, delivery *entity.Delivery) error {
			delivery.ID = uuid.New()
			return nil
		})

	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	mockPublisher.EXPECT().
		PublishDeliveryRegistered(ctx, mock.AnythingOfType("*service.DeliveryRegisteredEvent")).
		Return(nil)

	delivery, err := service.RegisterDelivery(ctx, &usecase.RegisterDeliveryInput{
		UnitID:          unitID,
		CreatedByUserID: staffID,
		Obs:             "2 caixas",
	})
	require.NoError(t, err)
	require.NotNil(t, delivery)
	assert.Equal(t, entity.DeliveryAwaiting, delivery.Status)
	assert.Equal(t, unitID, delivery.UnitID)
	assert.Equal(t, staffID, delivery.CreatedByUserID)
	assert.Equal(t, "2 caixas", delivery.Obs)
}

func TestDeliveryService_RegisterDelivery_PublishFailureDoesNotFail(t *testing.T) {
	service, mockDeliveryRepo, mockUnitRepo, mockAuditRepo, mockPublisher := newDeliveryServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()

	unit := &entity.Unit{ID: unitID, Number: 12, Label: "Unidade 12"}

	mockUnitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(unit, nil)
	mockDeliveryRepo.EXPECT().CreateDelivery(ctx, mock.AnythingOfType("*entity.Delivery")).Return(nil)
	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(nil)

	mockPublisher.EXPECT().
		PublishDeliveryRegistered(ctx, mock.AnythingOfType("*service.DeliveryRegisteredEvent")).
		Return(errors.New("broker unavailable"))

	// The delivery row is already committed; a lost event must not surface.
	delivery, err := service.RegisterDelivery(ctx, &usecase.RegisterDeliveryInput{
		UnitID:          unitID,
		CreatedByUserID: uuid.New(),
	})
	require.NoError(t, err)
	assert.NotNil(t, delivery)
}

func TestDeliveryService_RegisterDelivery_UnitNotFound(t *testing.T) {
	service, _, mockUnitRepo, _, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()

	mockUnitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(nil, repository.ErrUnitNotFound)

	delivery, err := service.RegisterDelivery(ctx, &usecase.RegisterDeliveryInput{
		UnitID:          unitID,
		CreatedByUserID: uuid.New(),
	})
	require.ErrorIs(t, err, domainerrors.ErrUnitNotFound)
	assert.Nil(t, delivery)
}

func TestDeliveryService_RegisterPickup_Success(t *testing.T) {
	service, mockDeliveryRepo, _, mockAuditRepo, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	deliveryID := uuid.New()
	staffID := uuid.New()
	pickedUpAt := time.Now()

	mockDeliveryRepo.EXPECT().
		RegisterPickup(ctx, deliveryID, "Maria Silva", "", mock.AnythingOfType("time.Time")).
		Return(nil)

	mockAuditRepo.EXPECT().
		CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).
		RunAndReturn(func(_ context.Context, entry *entity.AuditLog) error {
			require.NotNil(t, entry.ActorUserID)
			assert.Equal(t, staffID, *entry.ActorUserID)
			assert.Equal(t, "pickup", entry.Action)
			return nil
		})

	updated := &entity.Delivery{
		ID:             deliveryID,
		Status:         entity.DeliveryPickedUp,
		PickedUpAt:     &pickedUpAt,
		PickedUpByName: "Maria Silva",
	}
	mockDeliveryRepo.EXPECT().FindDeliveryByID(ctx, deliveryID).Return(updated, nil)

	delivery, err := service.RegisterPickup(ctx, &usecase.RegisterPickupInput{
		DeliveryID:       deliveryID,
		RecordedByUserID: staffID,
		PickedUpByName:   "Maria Silva",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryPickedUp, delivery.Status)
	assert.Equal(t, "Maria Silva", delivery.PickedUpByName)
	assert.NotNil(t, delivery.PickedUpAt)
}

func TestDeliveryService_RegisterPickup_AlreadyPickedUp(t *testing.T) {
	service, mockDeliveryRepo, _, _, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	mockDeliveryRepo.EXPECT().
		RegisterPickup(ctx, deliveryID, "João", "", mock.AnythingOfType("time.Time")).
		Return(repository.ErrDeliveryNotAwaiting)

	delivery, err := service.RegisterPickup(ctx, &usecase.RegisterPickupInput{
		DeliveryID:     deliveryID,
		PickedUpByName: "João",
	})
	require.ErrorIs(t, err, domainerrors.ErrDeliveryAlreadyPickedUp)
	assert.Nil(t, delivery)
}

func TestDeliveryService_RegisterPickup_NameRequired(t *testing.T) {
	service, _, _, _, _ := newDeliveryServiceForTest(t)

	delivery, err := service.RegisterPickup(context.Background(), &usecase.RegisterPickupInput{
		DeliveryID: uuid.New(),
	})
	require.ErrorIs(t, err, domainerrors.ErrPickupNameRequired)
	assert.Nil(t, delivery)
}

func TestDeliveryService_RegisterPickup_NotFound(t *testing.T) {
	service, mockDeliveryRepo, _, _, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	mockDeliveryRepo.EXPECT().
		RegisterPickup(ctx, deliveryID, "Ana", "", mock.AnythingOfType("time.Time")).
		Return(repository.ErrDeliveryNotFound)

	_, err := service.RegisterPickup(ctx, &usecase.RegisterPickupInput{
		DeliveryID:     deliveryID,
		PickedUpByName: "Ana",
	})
	require.ErrorIs(t, err, domainerrors.ErrDeliveryNotFound)
}

func TestDeliveryService_SearchDeliveries_InvalidStatus(t *testing.T) {
	service, _, _, _, _ := newDeliveryServiceForTest(t)

	_, err := service.SearchDeliveries(context.Background(), &usecase.SearchDeliveriesInput{
		Status: entity.DeliveryStatus("lost"),
	})
	require.Error(t, err)
}

func TestDeliveryService_SearchDeliveries_ByStatus(t *testing.T) {
	service, mockDeliveryRepo, _, _, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	expected := []*entity.Delivery{{ID: uuid.New(), Status: entity.DeliveryAwaiting}}

	mockDeliveryRepo.EXPECT().
		SearchDeliveries(ctx, repository.DeliverySearchFilter{
			Status: entity.DeliveryAwaiting,
			Limit:  20,
		}).
		Return(expected, nil)

	deliveries, err := service.SearchDeliveries(ctx, &usecase.SearchDeliveriesInput{
		Status: entity.DeliveryAwaiting,
		Limit:  20,
	})
	require.NoError(t, err)
	assert.Len(t, deliveries, 1)
}

func TestDeliveryService_ListUnitDeliveries_ResidentOfUnit(t *testing.T) {
	service, mockDeliveryRepo, mockUnitRepo, _, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()
	residentUserID := uuid.New()

	mockUnitRepo.EXPECT().
		FindActiveResidents(ctx, unitID).
		Return([]*entity.UnitResident{
			{ProfileID: uuid.New(), UserID: uuid.New(), FullName: "Carlos Souza"},
			{ProfileID: uuid.New(), UserID: residentUserID, FullName: "Ana Lima"},
		}, nil)

	expected := []*entity.Delivery{{ID: uuid.New(), UnitID: unitID, Status: entity.DeliveryAwaiting}}
	mockDeliveryRepo.EXPECT().ListDeliveriesByUnit(ctx, unitID, 20, 0).Return(expected, nil)

	deliveries, err := service.ListUnitDeliveries(ctx, &usecase.ListUnitDeliveriesInput{
		UnitID:       unitID,
		CallerUserID: residentUserID,
		CallerRoles:  entity.Roles{entity.RoleResident},
		Limit:        20,
	})
	require.NoError(t, err)
	assert.Len(t, deliveries, 1)
}

func TestDeliveryService_ListUnitDeliveries_ResidentOtherUnitForbidden(t *testing.T) {
	service, _, mockUnitRepo, _, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()

	// The caller occupies a different unit; the recipient set of this one
	// does not contain them. The repository must never be asked for history.
	mockUnitRepo.EXPECT().
		FindActiveResidents(ctx, unitID).
		Return([]*entity.UnitResident{
			{ProfileID: uuid.New(), UserID: uuid.New(), FullName: "Carlos Souza"},
		}, nil)

	deliveries, err := service.ListUnitDeliveries(ctx, &usecase.ListUnitDeliveriesInput{
		UnitID:       unitID,
		CallerUserID: uuid.New(),
		CallerRoles:  entity.Roles{entity.RoleResident},
		Limit:        20,
	})
	require.ErrorIs(t, err, domainerrors.ErrForbidden)
	assert.Nil(t, deliveries)
}

func TestDeliveryService_ListUnitDeliveries_StaffBypassesOccupancyCheck(t *testing.T) {
	service, mockDeliveryRepo, _, _, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()

	mockDeliveryRepo.EXPECT().ListDeliveriesByUnit(ctx, unitID, 10, 0).Return([]*entity.Delivery{}, nil)

	deliveries, err := service.ListUnitDeliveries(ctx, &usecase.ListUnitDeliveriesInput{
		UnitID:       unitID,
		CallerUserID: uuid.New(),
		CallerRoles:  entity.Roles{entity.RoleFrontDesk},
		Limit:        10,
	})
	require.NoError(t, err)
	assert.Empty(t, deliveries)
}

func TestDeliveryService_GetDelivery_NotFound(t *testing.T) {
	service, mockDeliveryRepo, _, _, _ := newDeliveryServiceForTest(t)

	ctx := context.Background()
	deliveryID := uuid.New()

	mockDeliveryRepo.EXPECT().FindDeliveryByID(ctx, deliveryID).Return(nil, repository.ErrDeliveryNotFound)

	_, err := service.GetDelivery(ctx, deliveryID)
	require.ErrorIs(t, err, domainerrors.ErrDeliveryNotFound)
}

func TestDeliveryService_RegisterDelivery_AuditFailureDoesNotFail(t *testing.T) {
	service, mockDeliveryRepo, mockUnitRepo, mockAuditRepo, mockPublisher := newDeliveryServiceForTest(t)

	ctx := context.Background()
	unitID := uuid.New()

	mockUnitRepo.EXPECT().FindUnitByID(ctx, unitID).Return(&entity.Unit{ID: unitID, Number: 5, Label: "Unidade 5"}, nil)
	mockDeliveryRepo.EXPECT().CreateDelivery(ctx, mock.AnythingOfType("*entity.Delivery")).Return(nil)
	mockAuditRepo.EXPECT().CreateAuditLog(ctx, mock.AnythingOfType("*entity.AuditLog")).Return(errors.New("audit table full"))
	mockPublisher.EXPECT().PublishDeliveryRegistered(ctx, mock.AnythingOfType("*service.DeliveryRegisteredEvent")).Return(nil)

	_, err := service.RegisterDelivery(ctx, &usecase.RegisterDeliveryInput{
		UnitID:          unitID,
		CreatedByUserID: uuid.New(),
	})
	require.NoError(t, err)
}
