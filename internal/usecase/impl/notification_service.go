package impl

import (
	"context"
	"log/slog"

	deliverycontext "easy/internal/delivery/context"
	"easy/internal/domain/entity"
	domainerrors "easy/internal/domain/errors"
	"easy/internal/domain/repository"
	"easy/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// notificationService implements the NotificationUsecase interface.
type notificationService struct {
	notificationRepo repository.NotificationRepository
	logger           *slog.Logger
}

// NotificationServiceParams holds dependencies for NotificationService, injected by Fx.
type NotificationServiceParams struct {
	fx.In

	NotificationRepo repository.NotificationRepository
	Logger           *slog.Logger
}

// NewNotificationService is the constructor for notificationService.
func NewNotificationService(params NotificationServiceParams) usecase.NotificationUsecase {
	return &notificationService{
		notificationRepo: params.NotificationRepo,
		logger:           params.Logger,
	}
}

func (srv *notificationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListMyNotifications retrieves the caller's notifications, newest first.
func (srv *notificationService) ListMyNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error) {
	return srv.notificationRepo.ListNotificationsByUser(ctx, userID, limit, offset)
}

// UnreadCount counts the caller's unread notifications.
func (srv *notificationService) UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error) {
	return srv.notificationRepo.CountUnreadByUser(ctx, userID)
}

// MarkRead marks one of the caller's notifications as read.
func (srv *notificationService) MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error {
	err := srv.notificationRepo.MarkNotificationRead(ctx, notificationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotificationNotFound):
			// Another user's notification looks like a missing one; the
			// inbox never reveals records the caller does not own.
			return domainerrors.ErrNotificationNotFound
		case errors.Is(err, repository.ErrNotificationAlreadyRead):
			return domainerrors.ErrNotificationAlreadyRead
		default:
			return err
		}
	}

	srv.log(ctx).Debug("Notification marked read",
		slog.String("notification_id", notificationID.String()),
	)

	return nil
}
