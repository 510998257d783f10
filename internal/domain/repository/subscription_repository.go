// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"errors"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrSubscriptionNotFound is returned when no push subscription exists for a user.
var ErrSubscriptionNotFound = errors.New("push subscription not found")

// SubscriptionRepository defines the interface for push-subscription database operations.
type SubscriptionRepository interface {
	// CreateSubscription persists a new push subscription.
	CreateSubscription(ctx context.Context, subscription *entity.PushSubscription) error

	// FindSubscriptionsByUsers retrieves the subscriptions of the given users
	// in one batch query. Users without a subscription are simply absent.
	FindSubscriptionsByUsers(ctx context.Context, userIDs []uuid.UUID) ([]*entity.PushSubscription, error)

	// DeleteSubscriptionsByUser removes every subscription of a user.
	// Deleting a user with no subscription is not an error.
	DeleteSubscriptionsByUser(ctx context.Context, userID uuid.UUID) error

	// DeleteSubscription removes a single subscription by ID, used to drop
	// endpoints the push service reports as gone.
	DeleteSubscription(ctx context.Context, id uuid.UUID) error
}
