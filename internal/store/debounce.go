package store

import (
	"sync"
	"time"
)

// Debouncer delays delivery of a rapidly changing value until it has been
// stable for the configured delay. Each Push restarts the timer and cancels
// the pending emission, so a superseded value never reaches the sink.
// Used to throttle search-triggered refetches.
type Debouncer[T any] struct {
	mu      sync.Mutex
	delay   time.Duration
	sink    func(T)
	timer   *time.Timer
	seq     uint64
	stopped bool
}

func NewDebouncer[T any](delay time.Duration, sink func(T)) *Debouncer[T] {
	return &Debouncer[T]{delay: delay, sink: sink}
}

// Push schedules v for delivery after the delay, superseding any pending
// value. The sink runs on the timer's goroutine.
func (d *Debouncer[T]) Push(v T) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}

	d.seq++
	seq := d.seq
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()
		stale := seq != d.seq || d.stopped
		d.mu.Unlock()
		if !stale {
			d.sink(v)
		}
	})
}

// Stop cancels any pending emission. Further pushes are ignored.
func (d *Debouncer[T]) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.stopped = true
	if d.timer != nil {
		d.timer.Stop()
	}
}
