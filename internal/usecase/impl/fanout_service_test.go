package impl

import (
	"context"
	"testing"

	"easy/internal/domain/entity"
	"easy/internal/domain/service"
	mockRepo "easy/internal/mocks/repository"
	mockSvc "easy/internal/mocks/service"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newFanoutServiceForTest(t *testing.T) (usecase.FanoutUsecase, *mockRepo.MockUnitRepository, *mockRepo.MockNotificationRepository, *mockRepo.MockSubscriptionRepository, *mockSvc.MockPushSender) {
	t.Helper()

	mockUnitRepo := mockRepo.NewMockUnitRepository(t)
	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)
	mockSubscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	mockPushSender := mockSvc.NewMockPushSender(t)

	svc := NewFanoutService(FanoutServiceParams{
		UnitRepo:         mockUnitRepo,
		NotificationRepo: mockNotificationRepo,
		SubscriptionRepo: mockSubscriptionRepo,
		PushSender:       mockPushSender,
		Logger:           newTestLogger(),
	})

	return svc, mockUnitRepo, mockNotificationRepo, mockSubscriptionRepo, mockPushSender
}

func notificationInput() *usecase.DeliveryNotificationInput {
	return &usecase.DeliveryNotificationInput{
		DeliveryID: uuid.New(),
		UnitID:     uuid.New(),
		UnitLabel:  "Bloco A - 101",
	}
}

func TestFanoutService_NotifyDelivery_OneNotificationPerResident(t *testing.T) {
	svc, mockUnitRepo, mockNotificationRepo, mockSubscriptionRepo, _ := newFanoutServiceForTest(t)

	ctx := context.Background()
	input := notificationInput()

	residents := []*entity.UnitResident{
		{ProfileID: uuid.New(), UserID: uuid.New(), FullName: "Maria"},
		{ProfileID: uuid.New(), UserID: uuid.New(), FullName: "João"},
		{ProfileID: uuid.New(), UserID: uuid.New(), FullName: "Ana"},
	}

	mockUnitRepo.EXPECT().FindActiveResidents(ctx, input.UnitID).Return(residents, nil)

	var created []*entity.Notification
	mockNotificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) error {
			created = notifications
			return nil
		})

	mockSubscriptionRepo.EXPECT().
		FindSubscriptionsByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	output, err := svc.NotifyDelivery(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 3, output.ResidentsNotified)
	assert.Equal(t, 0, output.PushSent)

	require.Len(t, created, 3)
	for i, notification := range created {
		assert.Equal(t, residents[i].UserID, notification.UserID)
		assert.Equal(t, entity.NotificationTypeDelivery, notification.Type)
		assert.Equal(t, "Nova Entrega - Bloco A - 101", notification.Title)
		assert.Equal(t, "Uma nova entrega chegou para sua unidade", notification.Body)
		assert.Equal(t, input.DeliveryID.String(), notification.Data["delivery_id"])
		assert.Equal(t, input.UnitLabel, notification.Data["unit_label"])
	}
}

func TestFanoutService_NotifyDelivery_ObsBecomesBody(t *testing.T) {
	svc, mockUnitRepo, mockNotificationRepo, mockSubscriptionRepo, _ := newFanoutServiceForTest(t)

	ctx := context.Background()
	input := notificationInput()
	input.Obs = "2 caixas grandes"

	residents := []*entity.UnitResident{{ProfileID: uuid.New(), UserID: uuid.New()}}

	mockUnitRepo.EXPECT().FindActiveResidents(ctx, input.UnitID).Return(residents, nil)
	mockNotificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) error {
			require.Len(t, notifications, 1)
			assert.Equal(t, "2 caixas grandes", notifications[0].Body)
			return nil
		})
	mockSubscriptionRepo.EXPECT().
		FindSubscriptionsByUsers(ctx, mock.AnythingOfType("[]uuid.UUID")).
		Return(nil, nil)

	_, err := svc.NotifyDelivery(ctx, input)
	require.NoError(t, err)
}

func TestFanoutService_NotifyDelivery_NoResidents(t *testing.T) {
	svc, mockUnitRepo, _, _, _ := newFanoutServiceForTest(t)

	ctx := context.Background()
	input := notificationInput()

	mockUnitRepo.EXPECT().FindActiveResidents(ctx, input.UnitID).Return([]*entity.UnitResident{}, nil)

	output, err := svc.NotifyDelivery(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 0, output.ResidentsNotified)
	assert.Equal(t, 0, output.PushSent)
}

func TestFanoutService_NotifyDelivery_PushDispatched(t *testing.T) {
	svc, mockUnitRepo, mockNotificationRepo, mockSubscriptionRepo, mockPushSender := newFanoutServiceForTest(t)

	ctx := context.Background()
	input := notificationInput()
	userID := uuid.New()
	notificationID := uuid.New()

	residents := []*entity.UnitResident{{ProfileID: uuid.New(), UserID: userID}}

	mockUnitRepo.EXPECT().FindActiveResidents(ctx, input.UnitID).Return(residents, nil)
	mockNotificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) error {
			notifications[0].ID = notificationID
			return nil
		})

	subscription := &entity.PushSubscription{
		ID:     uuid.New(),
		UserID: userID,
		Subscription: entity.WebPushDescriptor{
			Endpoint: "https://push.example.com/sub/abc",
		},
	}
	mockSubscriptionRepo.EXPECT().
		FindSubscriptionsByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.PushSubscription{subscription}, nil)

	mockPushSender.EXPECT().
		Send(ctx, subscription, mock.AnythingOfType("*service.PushPayload")).
		Return(nil)

	mockNotificationRepo.EXPECT().MarkPushSent(ctx, []uuid.UUID{notificationID}).Return(nil)

	output, err := svc.NotifyDelivery(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, output.ResidentsNotified)
	assert.Equal(t, 1, output.PushSent)
}

func TestFanoutService_NotifyDelivery_GoneSubscriptionDropped(t *testing.T) {
	svc, mockUnitRepo, mockNotificationRepo, mockSubscriptionRepo, mockPushSender := newFanoutServiceForTest(t)

	ctx := context.Background()
	input := notificationInput()
	userID := uuid.New()
	subscriptionID := uuid.New()

	residents := []*entity.UnitResident{{ProfileID: uuid.New(), UserID: userID}}

	mockUnitRepo.EXPECT().FindActiveResidents(ctx, input.UnitID).Return(residents, nil)
	mockNotificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(nil)

	subscription := &entity.PushSubscription{ID: subscriptionID, UserID: userID}
	mockSubscriptionRepo.EXPECT().
		FindSubscriptionsByUsers(ctx, []uuid.UUID{userID}).
		Return([]*entity.PushSubscription{subscription}, nil)

	mockPushSender.EXPECT().
		Send(ctx, subscription, mock.AnythingOfType("*service.PushPayload")).
		Return(service.ErrSubscriptionGone)

	mockSubscriptionRepo.EXPECT().DeleteSubscription(ctx, subscriptionID).Return(nil)

	output, err := svc.NotifyDelivery(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 1, output.ResidentsNotified)
	assert.Equal(t, 0, output.PushSent)
}

func TestFanoutService_NotifyDelivery_PushFailureSkipped(t *testing.T) {
	svc, mockUnitRepo, mockNotificationRepo, mockSubscriptionRepo, mockPushSender := newFanoutServiceForTest(t)

	ctx := context.Background()
	input := notificationInput()

	userA := uuid.New()
	userB := uuid.New()
	notifA := uuid.New()
	notifB := uuid.New()

	residents := []*entity.UnitResident{
		{ProfileID: uuid.New(), UserID: userA},
		{ProfileID: uuid.New(), UserID: userB},
	}

	mockUnitRepo.EXPECT().FindActiveResidents(ctx, input.UnitID).Return(residents, nil)
	mockNotificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) error {
			notifications[0].ID = notifA
			notifications[1].ID = notifB
			return nil
		})

	subA := &entity.PushSubscription{ID: uuid.New(), UserID: userA}
	subB := &entity.PushSubscription{ID: uuid.New(), UserID: userB}
	mockSubscriptionRepo.EXPECT().
		FindSubscriptionsByUsers(ctx, []uuid.UUID{userA, userB}).
		Return([]*entity.PushSubscription{subA, subB}, nil)

	mockPushSender.EXPECT().
		Send(ctx, subA, mock.AnythingOfType("*service.PushPayload")).
		Return(errors.New("endpoint timeout"))
	mockPushSender.EXPECT().
		Send(ctx, subB, mock.AnythingOfType("*service.PushPayload")).
		Return(nil)

	// Only the push that the service accepted is flagged.
	mockNotificationRepo.EXPECT().MarkPushSent(ctx, []uuid.UUID{notifB}).Return(nil)

	output, err := svc.NotifyDelivery(ctx, input)
	require.NoError(t, err)
	assert.Equal(t, 2, output.ResidentsNotified)
	assert.Equal(t, 1, output.PushSent)
}

func TestFanoutService_NotifyDelivery_BatchCreateFails(t *testing.T) {
	svc, mockUnitRepo, mockNotificationRepo, _, _ := newFanoutServiceForTest(t)

	ctx := context.Background()
	input := notificationInput()

	residents := []*entity.UnitResident{{ProfileID: uuid.New(), UserID: uuid.New()}}

	mockUnitRepo.EXPECT().FindActiveResidents(ctx, input.UnitID).Return(residents, nil)
	mockNotificationRepo.EXPECT().
		BatchCreateNotifications(ctx, mock.AnythingOfType("[]*entity.Notification")).
		Return(errors.New("insert failed"))

	output, err := svc.NotifyDelivery(ctx, input)
	require.Error(t, err)
	assert.Nil(t, output)
}
