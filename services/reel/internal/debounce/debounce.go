// Package debounce turns a noisy digital input into press events.
package debounce

import "time"

// DefaultDelay is the quiet period a raw level must hold before it is accepted.
const DefaultDelay = 50 * time.Millisecond

// Debouncer filters one digital input. It is not safe for concurrent use;
// it is polled from the frame loop only.
type Debouncer struct {
	delay     time.Duration
	activeLow bool

	lastRaw    bool      // raw level seen on the previous poll
	stable     bool      // accepted level
	lastChange time.Time // when lastRaw last changed
}

// New returns a debouncer whose stable and raw levels start inactive.
// activeLow selects the pull-up convention (pressed == low).
// delay <= 0 uses DefaultDelay.
func New(delay time.Duration, activeLow bool) *Debouncer {
	if delay <= 0 {
		delay = DefaultDelay
	}
	idle := activeLow // inactive level: high for active-low, low otherwise
	return &Debouncer{
		delay:     delay,
		activeLow: activeLow,
		lastRaw:   idle,
		stable:    idle,
	}
}

// Poll feeds one raw reading. It returns true exactly once per accepted
// press; accepted releases update the stable level silently.
func (d *Debouncer) Poll(raw bool, now time.Time) bool {
	if raw != d.lastRaw {
		d.lastChange = now
	}
	d.lastRaw = raw

	if now.Sub(d.lastChange) <= d.delay || raw == d.stable {
		return false
	}
	d.stable = raw
	return d.stable == d.active()
}

// Stable returns the accepted raw level.
func (d *Debouncer) Stable() bool { return d.stable }

// Pressed reports whether the accepted level is the active one.
func (d *Debouncer) Pressed() bool { return d.stable == d.active() }

func (d *Debouncer) Delay() time.Duration { return d.delay }

func (d *Debouncer) active() bool { return !d.activeLow }
