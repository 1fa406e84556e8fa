package picker

import "time"

// RefreshDelay is how long the cursor must rest before the lens is redrawn.
const RefreshDelay = 5 * time.Millisecond

// Debouncer is a restartable single-shot deadline. It owns no goroutine: the
// UI loop polls Fire with the current time, so the callback it guards always
// runs on the loop.
type Debouncer struct {
	delay    time.Duration
	deadline time.Time
	pending  bool
}

func NewDebouncer(delay time.Duration) *Debouncer {
	return &Debouncer{delay: delay}
}

// Restart (re)arms the deadline at now+delay, dropping any earlier one.
func (d *Debouncer) Restart(now time.Time) {
	d.deadline = now.Add(d.delay)
	d.pending = true
}

func (d *Debouncer) Stop() { d.pending = false }

func (d *Debouncer) Pending() bool { return d.pending }

// Fire reports true exactly once per Restart, on the first call at or after
// the deadline.
func (d *Debouncer) Fire(now time.Time) bool {
	if !d.pending || now.Before(d.deadline) {
		return false
	}
	d.pending = false
	return true
}
