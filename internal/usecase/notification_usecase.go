// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// NotificationUsecase defines the interface for a resident's notification inbox.
type NotificationUsecase interface {
	// ListMyNotifications retrieves the caller's notifications, newest first.
	ListMyNotifications(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// UnreadCount counts the caller's unread notifications.
	UnreadCount(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkRead marks one of the caller's notifications as read. Marking a
	// notification that is already read is a conflict, not a silent no-op.
	MarkRead(ctx context.Context, notificationID, userID uuid.UUID) error
}
