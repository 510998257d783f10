package impl

import (
	"context"
	"testing"

	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	mockRepo "easy/internal/mocks/repository"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newNotificationServiceForTest(t *testing.T) (usecase.NotificationUsecase, *mockRepo.MockNotificationRepository) {
	t.Helper()

	mockNotificationRepo := mockRepo.NewMockNotificationRepository(t)

	svc := NewNotificationService(NotificationServiceParams{
		NotificationRepo: mockNotificationRepo,
		Logger:           newTestLogger(),
	})

	return svc, mockNotificationRepo
}

func TestNotificationService_ListMyNotifications(t *testing.T) {
	svc, mockNotificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	expected := []*entity.Notification{
		{ID: uuid.New(), UserID: userID, Type: entity.NotificationTypeDelivery},
	}

	mockNotificationRepo.EXPECT().
		ListNotificationsByUser(ctx, userID, 20, 0).
		Return(expected, nil)

	notifications, err := svc.ListMyNotifications(ctx, userID, 20, 0)
	require.NoError(t, err)
	assert.Equal(t, expected, notifications)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	svc, mockNotificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockNotificationRepo.EXPECT().CountUnreadByUser(ctx, userID).Return(int64(4), nil)

	count, err := svc.UnreadCount(ctx, userID)
	require.NoError(t, err)
	assert.Equal(t, int64(4), count)
}

func TestNotificationService_MarkRead_Success(t *testing.T) {
	svc, mockNotificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	notificationID := uuid.New()
	userID := uuid.New()

	mockNotificationRepo.EXPECT().MarkNotificationRead(ctx, notificationID, userID).Return(nil)

	err := svc.MarkRead(ctx, notificationID, userID)
	require.NoError(t, err)
}

func TestNotificationService_MarkRead_NotOwned(t *testing.T) {
	svc, mockNotificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	notificationID := uuid.New()
	userID := uuid.New()

	// Another user's record is indistinguishable from a missing one.
	mockNotificationRepo.EXPECT().
		MarkNotificationRead(ctx, notificationID, userID).
		Return(repository.ErrNotificationNotFound)

	err := svc.MarkRead(ctx, notificationID, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotificationNotFound)
}

func TestNotificationService_MarkRead_AlreadyRead(t *testing.T) {
	svc, mockNotificationRepo := newNotificationServiceForTest(t)

	ctx := context.Background()
	notificationID := uuid.New()
	userID := uuid.New()

	mockNotificationRepo.EXPECT().
		MarkNotificationRead(ctx, notificationID, userID).
		Return(repository.ErrNotificationAlreadyRead)

	err := svc.MarkRead(ctx, notificationID, userID)
	require.ErrorIs(t, err, domainerrors.ErrNotificationAlreadyRead)
}
