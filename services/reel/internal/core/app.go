// Package core is the reel's frame loop: it owns all application state and
// ties inputs, parameters and patterns to the LED strip.
package core

import (
	"context"
	"image/color"
	"math/rand"
	"sync/atomic"
	"time"

	"demoreel-go/errcode"
	"demoreel-go/services/reel/internal/debounce"
	"demoreel-go/services/reel/internal/modesel"
	"demoreel-go/services/reel/internal/params"
	"demoreel-go/services/reel/internal/pattern"
	"demoreel-go/services/reel/internal/rotary"
	"demoreel-go/types"
	"demoreel-go/x/timex"
)

// Strip is the LED driver.
type Strip interface {
	Show(px []color.RGBA) error
	SetBrightness(level uint8)
}

// Pin is a raw digital input (pulled up, active low).
type Pin interface {
	Get() bool
}

// Emitter receives status events. Emit must not block.
type Emitter interface {
	Emit(Event)
}

type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type Event struct {
	Kind    types.EventKind
	Payload any
	State   types.ReelState
}

const (
	DefaultFPS           = 120
	DefaultMaintainEvery = 20 * time.Millisecond
)

type Config struct {
	Device        string
	LEDs          int
	FPS           uint32        // 0 selects DefaultFPS
	MaintainEvery time.Duration // 0 selects DefaultMaintainEvery
	Debounce      time.Duration // 0 selects debounce.DefaultDelay
	ReverseBrowse bool
	StatsEvery    time.Duration // 0 disables the stats event
	Seed          int64
}

// Deps are the collaborators handed to New. Encoder and Emitter may be nil.
type Deps struct {
	Strip    Strip
	Up, Down Pin
	Encoder  *rotary.Reader
	Params   *params.Store
	Patterns *pattern.Registry
	Emitter  Emitter
}

// App is not safe for concurrent use apart from Stats.
type App struct {
	cfg Config
	d   Deps

	up, down *debounce.Debouncer
	mode     modesel.Selector
	px       []color.RGBA
	rnd      *rand.Rand

	start     time.Time
	lastStats time.Time

	frames     atomic.Uint32
	maintains  atomic.Uint32
	showErrors atomic.Uint32
}

func New(cfg Config, d Deps) (*App, error) {
	const op = "core.new"
	switch {
	case d.Strip == nil:
		return nil, errcode.New(errcode.InvalidParams, op, "nil strip")
	case d.Up == nil || d.Down == nil:
		return nil, errcode.New(errcode.InvalidParams, op, "nil button pin")
	case d.Params == nil || d.Patterns == nil:
		return nil, errcode.New(errcode.InvalidParams, op, "nil params or patterns")
	case cfg.LEDs < 0:
		return nil, errcode.New(errcode.InvalidParams, op, "negative led count")
	}
	if cfg.FPS == 0 {
		cfg.FPS = DefaultFPS
	}
	if cfg.MaintainEvery <= 0 {
		cfg.MaintainEvery = DefaultMaintainEvery
	}
	a := &App{
		cfg:  cfg,
		d:    d,
		up:   debounce.New(cfg.Debounce, true),
		down: debounce.New(cfg.Debounce, true),
		px:   make([]color.RGBA, cfg.LEDs),
		rnd:  rand.New(rand.NewSource(cfg.Seed)),
	}
	d.Strip.SetBrightness(d.Params.Brightness())
	return a, nil
}

// Pixels exposes the frame buffer. Callers must not retain it across frames.
func (a *App) Pixels() []color.RGBA { return a.px }

func (a *App) Mode() modesel.Mode { return a.mode.Mode() }

func (a *App) FramePeriod() time.Duration { return timex.PeriodFromHz(a.cfg.FPS) }

// Frame renders the current pattern and flushes it. Transmit errors are
// counted and otherwise ignored.
func (a *App) Frame(now time.Time) {
	if a.start.IsZero() {
		a.start = now
	}
	pattern.Render(a.d.Patterns.Current(), pattern.Frame{
		Pixels:  a.px,
		Now:     now.Sub(a.start),
		Rand:    a.rnd,
		BaseHue: a.d.Params.BaseHue(),
	})
	a.show()
	a.frames.Add(1)
}

func (a *App) show() {
	if err := a.d.Strip.Show(a.px); err != nil {
		a.showErrors.Add(1)
	}
}

// Maintain runs the periodic housekeeping: base hue, buttons, encoder.
func (a *App) Maintain(now time.Time) {
	a.maintains.Add(1)
	a.d.Params.TickBaseHue()

	if a.down.Poll(a.d.Down.Get(), now) {
		a.d.Patterns.Previous()
		a.emitPattern(now, "previous")
	}
	if a.up.Poll(a.d.Up.Get(), now) {
		a.d.Patterns.Next()
		a.emitPattern(now, "next")
	}

	if enc := a.d.Encoder; enc != nil {
		if enc.ButtonReleased() {
			m := a.mode.Advance()
			a.emit(now, types.EventMode, types.ModeChange{Mode: m.String()})
		}
		if d := enc.PositionDelta(); d != 0 {
			a.emit(now, types.EventEncoder, types.EncoderTurn{Delta: d, Position: enc.Position()})
			a.OnTurn(now, int(d))
		}
	}

	if a.cfg.StatsEvery > 0 && now.Sub(a.lastStats) >= a.cfg.StatsEvery {
		a.lastStats = now
		a.emit(now, types.EventStats, a.Stats())
	}
}

// OnTurn applies one encoder step in the direction of delta's sign to
// whatever the current mode edits.
func (a *App) OnTurn(now time.Time, delta int) {
	if delta == 0 {
		return
	}
	p := a.d.Params
	switch a.mode.Mode() {
	case modesel.Color:
		h := p.AdjustHue(delta)
		pattern.FillSolid(a.px, pattern.HSV360(h, 255, p.Brightness()))
		a.d.Strip.SetBrightness(p.Brightness())
		a.show()
		a.emit(now, types.EventHue, types.HueChange{Hue: h})
	case modesel.Pattern:
		if delta < 0 && a.cfg.ReverseBrowse {
			a.d.Patterns.Previous()
			a.emitPattern(now, "previous")
			return
		}
		a.d.Patterns.Next()
		a.emitPattern(now, "next")
	case modesel.Brightness:
		b := p.AdjustBrightness(delta)
		a.d.Strip.SetBrightness(b)
		a.emit(now, types.EventBrightness, types.BrightnessChange{Level: b})
	}
}

// Run paces frames at the configured rate and runs maintenance on its own
// coarser interval. It returns only when ctx is cancelled.
func (a *App) Run(ctx context.Context, clk Clock) error {
	period := a.FramePeriod()
	now := clk.Now()
	a.start = now
	a.lastStats = now
	lastMaintain := now
	a.emit(now, types.EventBoot, types.Boot{Device: a.cfg.Device, LEDs: len(a.px), Patterns: a.d.Patterns.Len()})

	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		t0 := clk.Now()
		a.Frame(t0)
		if el := clk.Now().Sub(t0); el < period {
			clk.Sleep(period - el)
		}

		now = clk.Now()
		if now.Sub(lastMaintain) >= a.cfg.MaintainEvery {
			lastMaintain = now
			a.Maintain(now)
		}
	}
}

func (a *App) Stats() types.Stats {
	return types.Stats{
		Frames:     a.frames.Load(),
		Maintains:  a.maintains.Load(),
		ShowErrors: a.showErrors.Load(),
	}
}

// State snapshots the user-visible parameters.
func (a *App) State(now time.Time) types.ReelState {
	return types.ReelState{
		Mode:        a.mode.Mode().String(),
		Pattern:     a.d.Patterns.Index(),
		PatternName: a.d.Patterns.Current().String(),
		SolidHue:    a.d.Params.SolidHue(),
		Brightness:  a.d.Params.Brightness(),
		BaseHue:     a.d.Params.BaseHue(),
		TS:          now.UnixMilli(),
	}
}

func (a *App) emitPattern(now time.Time, dir string) {
	r := a.d.Patterns
	a.emit(now, types.EventPattern, types.PatternChange{Index: r.Index(), Name: r.Current().String(), Dir: dir})
}

func (a *App) emit(now time.Time, kind types.EventKind, payload any) {
	if a.d.Emitter == nil {
		return
	}
	a.d.Emitter.Emit(Event{Kind: kind, Payload: payload, State: a.State(now)})
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time        { return time.Now() }
func (SystemClock) Sleep(d time.Duration) { time.Sleep(d) }
