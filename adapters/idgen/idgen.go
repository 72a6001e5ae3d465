// Package idgen provides idempotency key generators for the API client.
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/alvinosh/nestjs-recurly-sub000/ports"
	"github.com/google/uuid"
)

// UUID generates random v4 UUID keys. It is the client default.
type UUID struct{}

// New returns a fresh idempotency key.
func (UUID) New() string {
	return uuid.New().String()
}

var _ ports.IDGenerator = UUID{}

// Sequential produces predictable keys such as "purchase-1", "purchase-2".
// Tests use it to assert the Idempotency-Key header.
type Sequential struct {
	prefix  string
	counter uint64
}

// NewSequential creates a sequential key generator.
func NewSequential(prefix string) *Sequential {
	return &Sequential{prefix: prefix}
}

// New returns the next key.
func (s *Sequential) New() string {
	n := atomic.AddUint64(&s.counter, 1)
	return s.prefix + strconv.FormatUint(n, 10)
}

var _ ports.IDGenerator = (*Sequential)(nil)
