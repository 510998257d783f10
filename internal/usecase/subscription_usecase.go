// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"easy/internal/domain/entity"

	"github.com/google/uuid"
)

// SubscribeInput carries a browser push descriptor to store for a user.
type SubscribeInput struct {
	UserID       uuid.UUID
	Subscription entity.WebPushDescriptor
}

// SubscriptionUsecase defines the interface for managing browser push subscriptions.
type SubscriptionUsecase interface {
	// Subscribe stores the caller's push descriptor with replace semantics:
	// any previously stored subscriptions of the user are removed in the
	// same transaction, so re-subscribing from the same browser never
	// accumulates stale endpoints.
	Subscribe(ctx context.Context, input *SubscribeInput) (*entity.PushSubscription, error)

	// Unsubscribe removes every stored subscription of the caller.
	Unsubscribe(ctx context.Context, userID uuid.UUID) error
}
