// Package reel wires board resources and configuration into the frame loop
// and reports its status on the bus.
package reel

import (
	"context"
	"time"

	"demoreel-go/bus"
	"demoreel-go/services/reel/internal/core"
	"demoreel-go/services/reel/internal/params"
	"demoreel-go/services/reel/internal/pattern"
	"demoreel-go/services/reel/internal/rotary"
	"demoreel-go/services/reel/platform"
	"demoreel-go/types"
	"demoreel-go/x/timex"
)

var TopicState = bus.T("reel", "state")

// TopicEvent is where events of one kind are published.
func TopicEvent(kind types.EventKind) bus.Topic { return bus.T("reel", "event", string(kind)) }

// TopicEvents matches every reel event.
var TopicEvents = bus.T("reel", "event", "#")

// busEmitter publishes each event and refreshes the retained state.
type busEmitter struct{ conn *bus.Connection }

func (e busEmitter) Emit(ev core.Event) {
	e.conn.Publish(e.conn.NewMessage(TopicEvent(ev.Kind), ev.Payload, false))
	e.conn.Publish(e.conn.NewMessage(TopicState, ev.State, true))
}

type Service struct {
	conn  *bus.Connection
	app   *core.App
	clock core.Clock
}

// New validates cfg and builds the frame loop around res.
func New(conn *bus.Connection, cfg types.Config, res platform.Resources) (*Service, error) {
	ps, err := params.New(cfg.Params)
	if err != nil {
		return nil, err
	}
	reg, err := pattern.FromNames(cfg.Patterns)
	if err != nil {
		return nil, err
	}

	var reader *rotary.Reader
	if res.Encoder != nil {
		var btn rotary.Button
		if res.EncButton != nil {
			btn = rotary.ActiveLow(res.EncButton)
		}
		reader = rotary.New(res.Encoder, btn)
		e := cfg.Inputs.Encoder
		reader.SetBoundaries(e.Min, e.Max, e.Circular)
	}

	app, err := core.New(core.Config{
		Device:        cfg.Device,
		LEDs:          cfg.Strip.LEDs,
		FPS:           cfg.Strip.FPS,
		MaintainEvery: timex.Ms(cfg.MaintainMs),
		Debounce:      timex.Ms(cfg.Inputs.DebounceMs),
		ReverseBrowse: cfg.ReverseBrowse,
		StatsEvery:    time.Duration(cfg.StatsEverySec) * time.Second,
		Seed:          time.Now().UnixNano(),
	}, core.Deps{
		Strip:    res.Strip,
		Up:       res.Up,
		Down:     res.Down,
		Encoder:  reader,
		Params:   ps,
		Patterns: reg,
		Emitter:  busEmitter{conn: conn},
	})
	if err != nil {
		return nil, err
	}
	return &Service{conn: conn, app: app, clock: core.SystemClock{}}, nil
}

// Run publishes the initial state and blocks in the frame loop until ctx is
// cancelled.
func (s *Service) Run(ctx context.Context) error {
	s.conn.Publish(s.conn.NewMessage(TopicState, s.app.State(s.clock.Now()), true))
	return s.app.Run(ctx, s.clock)
}

func (s *Service) Stats() types.Stats { return s.app.Stats() }

// Run is New followed by Service.Run.
func Run(ctx context.Context, conn *bus.Connection, cfg types.Config, res platform.Resources) error {
	s, err := New(conn, cfg, res)
	if err != nil {
		println("[reel] setup failed:", err.Error())
		return err
	}
	println("[reel] running at", int(time.Second/s.app.FramePeriod()), "fps")
	err = s.Run(ctx)
	println("[reel] stopped:", err.Error())
	return err
}
