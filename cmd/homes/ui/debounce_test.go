package ui

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type recorder struct {
	mu    sync.Mutex
	calls []string
}

func (r *recorder) deliver(q string) {
	r.mu.Lock()
	r.calls = append(r.calls, q)
	r.mu.Unlock()
}

func (r *recorder) got() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.calls...)
}

func TestQueryDebouncer_SingleCall(t *testing.T) {
	var rec recorder
	d := NewQueryDebouncer(50*time.Millisecond, rec.deliver)

	d.Push("loft")
	if !d.Pending() {
		t.Fatalf("expected a pending query right after Push")
	}

	time.Sleep(120 * time.Millisecond)

	if got := rec.got(); len(got) != 1 || got[0] != "loft" {
		t.Errorf("Expected [loft], got %v", got)
	}
	if d.Pending() {
		t.Errorf("expected nothing pending after delivery")
	}
}

func TestQueryDebouncer_RapidTyping(t *testing.T) {
	var rec recorder
	d := NewQueryDebouncer(50*time.Millisecond, rec.deliver)

	for _, q := range []string{"s", "st", "stu", "stud", "stude"} {
		d.Push(q)
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(120 * time.Millisecond)

	got := rec.got()
	if len(got) != 1 {
		t.Fatalf("Expected 1 delivery for a burst, got %d (%v)", len(got), got)
	}
	if got[0] != "stude" {
		t.Errorf("Expected last query 'stude', got %q", got[0])
	}
}

func TestQueryDebouncer_Cancel(t *testing.T) {
	var called int32
	d := NewQueryDebouncer(50*time.Millisecond, func(string) {
		atomic.AddInt32(&called, 1)
	})

	d.Push("x")
	time.Sleep(10 * time.Millisecond)
	d.Cancel()

	time.Sleep(100 * time.Millisecond)

	if atomic.LoadInt32(&called) != 0 {
		t.Errorf("Expected 0 calls after cancel, got %d", called)
	}
}

func TestQueryDebouncer_Flush(t *testing.T) {
	var rec recorder
	d := NewQueryDebouncer(50*time.Millisecond, rec.deliver)

	d.Push("pent")
	d.Flush("")

	time.Sleep(100 * time.Millisecond)

	if got := rec.got(); len(got) != 1 || got[0] != "" {
		t.Errorf("Expected only the flushed empty query, got %v", got)
	}
}

func TestQueryDebouncer_ZeroDurationIsSynchronous(t *testing.T) {
	var rec recorder
	d := NewQueryDebouncer(0, rec.deliver)

	d.Push("a")
	d.Push("ab")

	if got := rec.got(); len(got) != 2 || got[1] != "ab" {
		t.Errorf("Expected synchronous deliveries [a ab], got %v", got)
	}
	if d.Pending() {
		t.Errorf("zero-duration debouncer should never be pending")
	}
}

func TestQueryDebouncer_FlushAfterFiredTimerIsDeliveredLast(t *testing.T) {
	var rec recorder
	started := make(chan struct{})
	release := make(chan struct{})
	var once sync.Once

	d := NewQueryDebouncer(time.Millisecond, func(q string) {
		if q == "a" {
			once.Do(func() {
				close(started)
				<-release
			})
		}
		rec.deliver(q)
	})

	d.Push("a")
	select {
	case <-started:
	case <-time.After(time.Second):
		t.Fatal("timer never fired")
	}

	flushed := make(chan struct{})
	go func() {
		d.Flush("")
		close(flushed)
	}()

	time.Sleep(20 * time.Millisecond)
	close(release)

	select {
	case <-flushed:
	case <-time.After(time.Second):
		t.Fatal("Flush did not return")
	}

	got := rec.got()
	if len(got) != 2 || got[0] != "a" || got[1] != "" {
		t.Errorf("Expected deliveries [a \"\"] with the flushed query last, got %q", got)
	}
}

func TestQueryDebouncer_CancelAfterFireSkipsDelivery(t *testing.T) {
	var rec recorder
	d := NewQueryDebouncer(time.Millisecond, rec.deliver)

	// Hold the delivery lock so the fired timer waits, then cancel.
	d.deliverMu.Lock()
	d.Push("old")
	time.Sleep(20 * time.Millisecond)
	d.Cancel()
	d.deliverMu.Unlock()

	time.Sleep(20 * time.Millisecond)

	if got := rec.got(); len(got) != 0 {
		t.Errorf("Expected no delivery after cancel, got %q", got)
	}
}
