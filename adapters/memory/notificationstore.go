// Package memory provides in-memory implementations of storage ports,
// used when no database is configured and in tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/alvinosh/nestjs-recurly-sub000/domain/webhook"
	"github.com/alvinosh/nestjs-recurly-sub000/ports"
)

// NotificationStore is an in-memory implementation of ports.NotificationStore.
type NotificationStore struct {
	mu    sync.RWMutex
	byID  map[string]webhook.Notification
	order []string // insertion order
}

// NewNotificationStore creates a new in-memory notification store.
func NewNotificationStore() *NotificationStore {
	return &NotificationStore{
		byID: make(map[string]webhook.Notification),
	}
}

// Save stores a notification. The first delivery of an ID wins.
func (s *NotificationStore) Save(ctx context.Context, n webhook.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[n.ID]; exists {
		return ports.ErrDuplicate
	}
	s.byID[n.ID] = n
	s.order = append(s.order, n.ID)
	return nil
}

// Get retrieves a notification by ID.
func (s *NotificationStore) Get(ctx context.Context, id string) (webhook.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	n, ok := s.byID[id]
	if !ok {
		return webhook.Notification{}, ports.ErrNotFound
	}
	return n, nil
}

// List returns up to limit notifications, most recently received first.
func (s *NotificationStore) List(ctx context.Context, limit int) ([]webhook.Notification, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]webhook.Notification, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.byID[s.order[i]])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].ReceivedAt.After(out[j].ReceivedAt)
	})

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

// Len returns the number of stored notifications.
func (s *NotificationStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
