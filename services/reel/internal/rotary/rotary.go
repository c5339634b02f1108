// Package rotary reads a quadrature encoder with an integrated push button.
//
// The encoder count is advanced from interrupt context; everything else runs
// in the frame loop. Only Counter is touched by the ISR.
package rotary

import (
	"math"
	"sync/atomic"

	"demoreel-go/x/mathx"
)

// Source yields the absolute encoder count.
type Source interface {
	Position() int
}

// Button reports the current (undebounced) state of the encoder push button.
type Button interface {
	Pressed() bool
}

// Level is a raw digital input.
type Level interface {
	Get() bool
}

type activeLow struct{ pin Level }

func (a activeLow) Pressed() bool { return !a.pin.Get() }

// ActiveLow adapts a pulled-up input wired to ground through the switch.
func ActiveLow(pin Level) Button { return activeLow{pin: pin} }

// Counter is the ISR-safe position cell. Step is the only operation an
// interrupt handler may call.
type Counter struct {
	n atomic.Int32
}

// Step adds the sign of dir to the count.
func (c *Counter) Step(dir int) {
	if s := mathx.Sign(dir); s != 0 {
		c.n.Add(int32(s))
	}
}

func (c *Counter) Set(v int)     { c.n.Store(int32(v)) }
func (c *Counter) Position() int { return int(c.n.Load()) }

// Bounds limits the accumulated position. Min == Max disables limiting.
type Bounds struct {
	Min, Max int
	Circular bool
}

func (b Bounds) apply(v int) int {
	if b.Min >= b.Max {
		return v
	}
	if b.Circular {
		return mathx.WrapRange(v, b.Min, b.Max)
	}
	return mathx.Clamp(v, b.Min, b.Max)
}

// ButtonState is the last observed push-button level.
type ButtonState uint8

const (
	Released ButtonState = iota
	Pressed
)

func (s ButtonState) String() string {
	if s == Pressed {
		return "pressed"
	}
	return "released"
}

// Reader turns the raw count and button level into per-poll deltas and
// release edges. It is not safe for concurrent use.
type Reader struct {
	src Source
	btn Button

	last    int // source count at the previous delta read
	pos     int // accumulated, bounded
	bounds  Bounds
	pressed bool
}

// New returns a reader positioned at zero with the button released.
// btn may be nil for encoders without a switch.
func New(src Source, btn Button) *Reader {
	return &Reader{src: src, btn: btn, last: src.Position()}
}

// SetBoundaries limits Position to [lo, hi]. A circular range wraps,
// otherwise the position clamps. The current position is brought into range.
func (r *Reader) SetBoundaries(lo, hi int, circular bool) {
	r.bounds = Bounds{Min: lo, Max: hi, Circular: circular}
	r.pos = r.bounds.apply(r.pos)
}

func (r *Reader) Bounds() Bounds { return r.bounds }

// PositionDelta returns the signed count change since the previous call.
// Each step is reported once.
func (r *Reader) PositionDelta() int16 {
	cur := r.src.Position()
	d := cur - r.last
	r.last = cur
	if d == 0 {
		return 0
	}
	r.pos = r.bounds.apply(r.pos + d)
	return int16(mathx.Clamp(d, math.MinInt16, math.MaxInt16))
}

// Position returns the accumulated position as of the last PositionDelta.
func (r *Reader) Position() int { return r.pos }

// ButtonReleased reports a pressed to released transition between this poll
// and the previous one.
func (r *Reader) ButtonReleased() bool {
	if r.btn == nil {
		return false
	}
	p := r.btn.Pressed()
	rel := r.pressed && !p
	r.pressed = p
	return rel
}

// ButtonState returns the level seen by the last ButtonReleased poll.
func (r *Reader) ButtonState() ButtonState {
	if r.pressed {
		return Pressed
	}
	return Released
}
