// Package service defines interfaces for core, stateless domain logic.
// These services encapsulate business rules that don't naturally fit within a single entity.
package service

import (
	"context"
	"errors"

	"easy/internal/domain/entity"
)

// ErrSubscriptionGone is returned by a PushSender when the push service
// reports the endpoint no longer exists. Callers should drop the stored
// subscription instead of retrying it.
var ErrSubscriptionGone = errors.New("push subscription endpoint gone")

// PushPayload is the message delivered to a browser push endpoint.
type PushPayload struct {
	Title string            `json:"title"`          // Headline shown by the browser.
	Body  string            `json:"body,omitempty"` // Optional longer text.
	Data  map[string]string `json:"data,omitempty"` // Structured payload for the service worker.
}

// PushSender defines the interface for dispatching Web Push messages.
// Dispatch is best-effort, at-most-one-attempt: implementations never retry.
type PushSender interface {
	// Send dispatches one push message to a single subscription endpoint.
	Send(ctx context.Context, subscription *entity.PushSubscription, payload *PushPayload) error
}
