// Package delivery defines the transport-layer contract shared by the API
// and notifier servers.
package delivery

import "context"

// Delivery is a serving transport. Implementations block in Serve until the
// server stops; shutdown is handled through fx lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
