// Package clock supplies the time source the webhook receiver compares
// recurly-signature timestamps against. The same instant stamps the
// received_at of each stored notification.
package clock

import (
	"sync"
	"time"

	"github.com/alvinosh/nestjs-recurly-sub000/ports"
)

// Real is the clock serve mode runs with.
type Real struct{}

// Now returns time.Now.
func (Real) Now() time.Time {
	return time.Now()
}

// Fake holds a fixed instant so tests can place a signature just inside
// or just outside the tolerance window.
type Fake struct {
	mu      sync.RWMutex
	current time.Time
}

// NewFake returns a Fake set to t.
func NewFake(t time.Time) *Fake {
	return &Fake{current: t}
}

// FromUnixMilli returns a Fake set to a recurly-signature timestamp,
// which is milliseconds since the epoch.
func FromUnixMilli(ms int64) *Fake {
	return NewFake(time.UnixMilli(ms))
}

// Now returns the instant the Fake is set to.
func (f *Fake) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.current
}

// Advance ages every pending signature by d.
func (f *Fake) Advance(d time.Duration) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current = f.current.Add(d)
}

var (
	_ ports.Clock = Real{}
	_ ports.Clock = (*Fake)(nil)
)
