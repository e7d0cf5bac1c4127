package ui

import (
	"sync"
	"time"
)

// QueryDebouncer delays search queries until typing pauses. Only the last
// query of a burst is delivered, and a query pushed, flushed or cancelled
// later always supersedes one whose timer already fired.
type QueryDebouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
	pending  string
	gen      uint64

	// held for the whole of every deliver call so deliveries stay ordered
	deliverMu sync.Mutex
	deliver   func(string)
}

// NewQueryDebouncer creates a debouncer that hands settled queries to deliver.
// A zero duration delivers synchronously.
func NewQueryDebouncer(duration time.Duration, deliver func(string)) *QueryDebouncer {
	return &QueryDebouncer{
		duration: duration,
		deliver:  deliver,
	}
}

// Push records query and restarts the delay.
func (d *QueryDebouncer) Push(query string) {
	if d.duration <= 0 {
		d.Flush(query)
		return
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	d.pending = query
	if d.timer != nil {
		d.timer.Stop()
	}
	gen := d.gen
	d.timer = time.AfterFunc(d.duration, func() { d.fire(gen) })
}

func (d *QueryDebouncer) fire(gen uint64) {
	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()

	d.mu.Lock()
	if gen != d.gen {
		d.mu.Unlock()
		return
	}
	q := d.pending
	d.timer = nil
	d.mu.Unlock()

	d.deliver(q)
}

// Flush delivers query now and drops anything pending. It waits for a
// delivery already in progress, so query is the last one delivered.
func (d *QueryDebouncer) Flush(query string) {
	d.Cancel()

	d.deliverMu.Lock()
	defer d.deliverMu.Unlock()
	d.deliver(query)
}

// Cancel drops any pending query, including one whose timer has fired but
// not yet delivered.
func (d *QueryDebouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.gen++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

// Pending reports whether a query is waiting for the delay to pass.
func (d *QueryDebouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// DefaultSearchDebounce is used when the configuration does not set one.
const DefaultSearchDebounce = 150 * time.Millisecond
