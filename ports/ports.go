// Package ports defines interfaces (contracts) between layers.
// These interfaces enable dependency injection and testability.
// Implementations live in adapters/.
package ports

import (
	"context"
	"errors"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/domain/webhook"
)

// ErrDuplicate is returned by stores when a record with the same ID exists.
var ErrDuplicate = errors.New("duplicate record")

// ErrNotFound is returned by stores when a record does not exist.
var ErrNotFound = errors.New("record not found")

// -----------------------------------------------------------------------------
// Infrastructure Ports
// -----------------------------------------------------------------------------

// Clock abstracts time for testability.
type Clock interface {
	Now() time.Time
}

// IDGenerator generates unique identifiers.
// The API client uses it for Idempotency-Key headers.
type IDGenerator interface {
	New() string
}

// -----------------------------------------------------------------------------
// Observability Ports
// -----------------------------------------------------------------------------

// RequestObserver receives one call per completed API request.
// status is 0 when the request never produced a response.
type RequestObserver interface {
	ObserveRequest(method, resource string, status int, duration time.Duration, err error)
}

// NotificationObserver receives one call per handled webhook delivery.
// outcome is one of "stored", "duplicate", "rejected", "error".
type NotificationObserver interface {
	ObserveNotification(objectType, eventType, outcome string)
}

// -----------------------------------------------------------------------------
// Data Store Ports
// -----------------------------------------------------------------------------

// NotificationStore persists received webhook notifications.
type NotificationStore interface {
	// Save stores a notification. Returns ErrDuplicate if the ID was seen before.
	Save(ctx context.Context, n webhook.Notification) error
	Get(ctx context.Context, id string) (webhook.Notification, error)
	// List returns the most recently received notifications first.
	List(ctx context.Context, limit int) ([]webhook.Notification, error)
}
