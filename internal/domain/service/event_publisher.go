package service

import (
	"context"
)

// DeliveryRegisteredEvent is published after a delivery row is durably
// created. It carries exactly the fields the notification fan-out needs;
// the fan-out re-reads everything else from storage.
type DeliveryRegisteredEvent struct {
	RequestID  string `json:"request_id,omitempty"` // For distributed tracing.
	DeliveryID string `json:"delivery_id"`
	UnitID     string `json:"unit_id"`
	UnitLabel  string `json:"unit_label"`
	Obs        string `json:"obs,omitempty"`
}

// EventPublisher defines the interface for publishing events to a message queue.
// Publishing is a best-effort side effect of the primary write: callers log a
// publish failure but never roll back or fail the write because of it.
type EventPublisher interface {
	// PublishDeliveryRegistered publishes a delivery event for async fan-out.
	PublishDeliveryRegistered(ctx context.Context, event *DeliveryRegisteredEvent) error

	// Close releases any resources held by the publisher.
	Close() error
}
