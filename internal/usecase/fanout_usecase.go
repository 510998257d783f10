// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// DeliveryNotificationInput carries the fields of a delivery-registered event
// into the fan-out.
type DeliveryNotificationInput struct {
	DeliveryID uuid.UUID
	UnitID     uuid.UUID
	UnitLabel  string
	Obs        string
}

// DeliveryNotificationOutput reports what the fan-out accomplished.
type DeliveryNotificationOutput struct {
	ResidentsNotified int // Notification rows created, one per active resident.
	PushSent          int // Push attempts that the push service accepted.
}

// FanoutUsecase defines the interface for the notification fan-out performed
// by the notifier worker.
type FanoutUsecase interface {
	// NotifyDelivery resolves the unit's active residents, persists one
	// notification per resident in a single batch, then attempts one Web
	// Push per stored subscription. Push delivery is best effort: individual
	// failures are logged and skipped, and never fail the fan-out.
	NotifyDelivery(ctx context.Context, input *DeliveryNotificationInput) (*DeliveryNotificationOutput, error)
}
