// internal/session/store.go
package session

import (
	"context"
	"time"
)

// Store is the visitor-scoped key-value bag backing the cart map and the
// checkout batch. Implementations must keep visitors isolated from each
// other; nothing here is shared across sessions.
type Store interface {
	// GetCart returns the visitor's cart map. A missing cart is an empty
	// map, not an error.
	GetCart(ctx context.Context, visitorID string) (map[string]int, error)
	SaveCart(ctx context.Context, visitorID string, cart map[string]int) error

	// SaveBatch stores the order ids created by a bundle checkout.
	SaveBatch(ctx context.Context, visitorID string, orderIDs []string) error
	// PopBatch returns the stored batch and deletes it in the same step.
	// A second call finds nothing: the batch key is consumed on first read.
	PopBatch(ctx context.Context, visitorID string) ([]string, error)
}

const (
	cartKeyPrefix  = "session:cart:"
	batchKeyPrefix = "session:batch:"
)

// DefaultTTL bounds how long an abandoned cart or batch survives.
const DefaultTTL = 72 * time.Hour
