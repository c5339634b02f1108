// services/reel/platform/factories_host.go
//go:build !rp2040 && !rp2350

package platform

import (
	"image/color"
	"io"
	"os"
	"sync"

	"demoreel-go/services/reel/internal/rotary"
	"demoreel-go/types"
)

// Board is the config profile selected for this build.
const Board = "sim"

// ------------------------------ GPIO (host) ----------------------------------

// FakePin is a pulled-up input: it reads high until pressed.
type FakePin struct {
	mu    sync.Mutex
	level bool
}

func NewFakePin() *FakePin { return &FakePin{level: true} }

func (p *FakePin) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *FakePin) Set(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

func (p *FakePin) Press()   { p.Set(false) }
func (p *FakePin) Release() { p.Set(true) }

// ------------------------------ Strip (host) ---------------------------------

// HostStrip records the last transmitted frame.
type HostStrip struct {
	mu         sync.Mutex
	frame      []color.RGBA
	brightness uint8
	shows      uint32
	err        error
}

func NewHostStrip(leds int) *HostStrip {
	return &HostStrip{frame: make([]color.RGBA, 0, leds), brightness: 0xFF}
}

func (s *HostStrip) Show(px []color.RGBA) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.frame = append(s.frame[:0], px...)
	s.shows++
	return s.err
}

func (s *HostStrip) SetBrightness(level uint8) {
	s.mu.Lock()
	s.brightness = level
	s.mu.Unlock()
}

// Snapshot returns the last frame as the LEDs would display it, with
// brightness applied.
func (s *HostStrip) Snapshot() []color.RGBA {
	s.mu.Lock()
	defer s.mu.Unlock()
	return scaleInto(make([]color.RGBA, len(s.frame)), s.frame, s.brightness)
}

func (s *HostStrip) Brightness() uint8 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.brightness
}

func (s *HostStrip) Shows() uint32 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.shows
}

// FailWith makes subsequent Show calls return err (nil clears it).
func (s *HostStrip) FailWith(err error) {
	s.mu.Lock()
	s.err = err
	s.mu.Unlock()
}

// ------------------------------ Board (host) ---------------------------------

// Host bundles the fakes behind a Resources value.
type Host struct {
	Up, Down, Button *FakePin
	Encoder          *rotary.Counter
	Strip            *HostStrip
	Console          io.Writer
}

// NewHost builds fakes sized from cfg. A nil console discards output.
func NewHost(cfg types.Config, console io.Writer) *Host {
	if console == nil {
		console = io.Discard
	}
	return &Host{
		Up:      NewFakePin(),
		Down:    NewFakePin(),
		Button:  NewFakePin(),
		Encoder: &rotary.Counter{},
		Strip:   NewHostStrip(cfg.Strip.LEDs),
		Console: console,
	}
}

func (h *Host) Resources() Resources {
	return Resources{
		Up:        h.Up,
		Down:      h.Down,
		EncButton: h.Button,
		Encoder:   h.Encoder,
		Strip:     h.Strip,
		Console:   h.Console,
	}
}

// Turn simulates one encoder detent; the sign of dir gives the direction.
func (h *Host) Turn(dir int) { h.Encoder.Step(dir) }

// Setup returns host fakes with the console on stdout.
func Setup(cfg types.Config) (Resources, error) {
	return NewHost(cfg, os.Stdout).Resources(), nil
}
