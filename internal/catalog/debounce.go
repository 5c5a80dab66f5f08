package catalog

import (
	"sync"
	"time"
)

// Debouncer delays search evaluation until the input quiets down. At most one
// timer is pending; every new trigger cancels and replaces it, so a burst of
// edits settles exactly once, with the last value.
type Debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	settle  func(value string)
	timer   *time.Timer
	pending bool
	gen     uint64
}

func NewDebouncer(delay time.Duration, settle func(value string)) *Debouncer {
	return &Debouncer{delay: delay, settle: settle}
}

// Trigger records a new input value. The previous pending timer, if any, is
// stopped so it can never fire with a stale value. The generation check
// covers the window where an old timer has expired but its callback has not
// taken the lock yet.
func (d *Debouncer) Trigger(value string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
	}

	d.gen++
	d.pending = true
	gen := d.gen

	d.timer = time.AfterFunc(d.delay, func() {
		d.mu.Lock()

		if d.gen != gen || !d.pending {
			d.mu.Unlock()
			return
		}

		d.pending = false
		d.timer = nil
		d.mu.Unlock()

		d.settle(value)
	})
}

// Pending reports whether a settle is still outstanding, which is what drives
// the "searching" indicator.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()

	return d.pending
}

// Stop cancels any outstanding settle without firing it.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}

	d.pending = false
}
