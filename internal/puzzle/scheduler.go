package puzzle

import (
	"context"
	"sync"
	"sync/atomic"
	"time"
)

// Scheduler runs callbacks later on the puzzle's event loop.
// Implementations must never run fn concurrently with other puzzle calls.
type Scheduler interface {
	// After schedules fn to run once d has elapsed. The returned function
	// cancels fn if it has not started yet; calling it more than once is safe.
	After(d time.Duration, fn func()) (cancel func())
}

// Loop is a minimal event loop: callbacks posted to it run one at a time on
// the goroutine that called Run. It implements Scheduler.
type Loop struct {
	queue    chan func()
	done     chan struct{}
	stopOnce sync.Once
}

// NewLoop creates a loop with a queue of the given capacity.
func NewLoop(capacity int) *Loop {
	if capacity < 1 {
		capacity = 64
	}
	return &Loop{
		queue: make(chan func(), capacity),
		done:  make(chan struct{}),
	}
}

// Run processes callbacks until ctx is done.
func (l *Loop) Run(ctx context.Context) error {
	defer l.stopOnce.Do(func() { close(l.done) })

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case fn := <-l.queue:
			fn()
		}
	}
}

// Post enqueues fn. It returns false if the loop has stopped.
func (l *Loop) Post(fn func()) bool {
	select {
	case <-l.done:
		return false
	default:
	}

	select {
	case l.queue <- fn:
		return true
	case <-l.done:
		return false
	}
}

// Do posts fn and waits for it to run.
func (l *Loop) Do(ctx context.Context, fn func()) error {
	finished := make(chan struct{})
	if !l.Post(func() {
		defer close(finished)
		fn()
	}) {
		return context.Canceled
	}

	select {
	case <-finished:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// After implements Scheduler. The timer fires on its own goroutine and posts
// fn back onto the loop.
func (l *Loop) After(d time.Duration, fn func()) func() {
	var cancelled atomic.Bool
	t := time.AfterFunc(d, func() {
		l.Post(func() {
			if !cancelled.Load() {
				fn()
			}
		})
	})
	return func() {
		cancelled.Store(true)
		t.Stop()
	}
}
