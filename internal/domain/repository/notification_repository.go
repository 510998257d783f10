// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for notification persistence.
var (
	// ErrNotificationNotFound is returned when a notification is not found.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrNotificationAlreadyRead is returned when read_at is already set.
	ErrNotificationAlreadyRead = errors.New("notification already read")
)

// NotificationRepository defines the interface for notification-related database operations.
type NotificationRepository interface {
	// BatchCreateNotifications persists one notification per recipient in a
	// single batch. The whole batch fails or succeeds together.
	BatchCreateNotifications(ctx context.Context, notifications []*entity.Notification) error

	// ListNotificationsByUser retrieves a user's notifications, newest first.
	ListNotificationsByUser(ctx context.Context, userID uuid.UUID, limit, offset int) ([]*entity.Notification, error)

	// CountUnreadByUser counts the user's notifications with read_at unset.
	CountUnreadByUser(ctx context.Context, userID uuid.UUID) (int64, error)

	// MarkNotificationRead sets read_at once, only by the owning user.
	// Returns ErrNotificationAlreadyRead if read_at was already set.
	MarkNotificationRead(ctx context.Context, id, userID uuid.UUID) error

	// MarkPushSent flags the given notifications as successfully pushed.
	MarkPushSent(ctx context.Context, ids []uuid.UUID) error
}
