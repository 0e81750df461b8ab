package services

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid Schedule calls into a single deferred
// invocation: each call resets the timer, so only the last function
// scheduled within the interval runs. Used to hold back search execution
// while the user is still typing.
type Debouncer struct {
	interval time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer with the given settle interval.
// A non-positive interval makes Schedule run synchronously.
func NewDebouncer(interval time.Duration) *Debouncer {
	return &Debouncer{interval: interval}
}

// Schedule runs fn after the interval elapses without another Schedule or
// Cancel call. A pending invocation is replaced, never run.
func (d *Debouncer) Schedule(fn func()) {
	if d.interval <= 0 {
		fn()
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.interval, fn)
}

// Cancel discards any pending invocation.
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}
