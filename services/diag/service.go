// Package diag renders reel events as human-readable console lines.
package diag

import (
	"context"
	"io"
	"strconv"
	"time"

	"demoreel-go/bus"
	"demoreel-go/services/reel"
	"demoreel-go/types"
)

type Service struct {
	out   io.Writer
	every time.Duration // state summary interval, 0 disables

	state types.ReelState
	seen  bool
	lines uint32
}

// New returns a service writing to out. every > 0 adds a periodic summary of
// the latest reel state.
func New(out io.Writer, every time.Duration) *Service {
	return &Service{out: out, every: every}
}

func (s *Service) serviceLoop(ctx context.Context, conn *bus.Connection) {
	evSub := conn.Subscribe(reel.TopicEvents)
	defer conn.Unsubscribe(evSub)
	stSub := conn.Subscribe(reel.TopicState)
	defer conn.Unsubscribe(stSub)

	var tickC <-chan time.Time
	if s.every > 0 {
		tick := time.NewTicker(s.every)
		defer tick.Stop()
		tickC = tick.C
	}

	for {
		select {
		case <-ctx.Done():
			println("[diag] stopping")
			return
		case msg := <-evSub.Channel():
			if line, ok := formatEvent(msg); ok {
				s.write(line)
			}
		case msg := <-stSub.Channel():
			if st, ok := msg.Payload.(types.ReelState); ok {
				s.state, s.seen = st, true
			}
		case <-tickC:
			if s.seen {
				s.write(formatState(s.state))
			}
		}
	}
}

func (s *Service) write(line []byte) {
	_, _ = s.out.Write(append(line, '\n'))
	s.lines++
}

// Start the diag service.
func (s *Service) Start(ctx context.Context, conn *bus.Connection) error {
	go s.serviceLoop(ctx, conn)
	return nil
}

func kindOf(t bus.Topic) (types.EventKind, bool) {
	if t.Len() != 3 {
		return "", false
	}
	k, ok := t.At(2).(string)
	return types.EventKind(k), ok
}

// formatEvent turns a reel/event/<kind> message into one line.
func formatEvent(msg *bus.Message) ([]byte, bool) {
	kind, ok := kindOf(msg.Topic)
	if !ok {
		return nil, false
	}
	b := append(make([]byte, 0, 64), "[reel] "...)
	b = append(b, string(kind)...)
	switch p := msg.Payload.(type) {
	case types.Boot:
		b = append(b, ' ')
		b = append(b, p.Device...)
		b = append(b, " leds="...)
		b = strconv.AppendInt(b, int64(p.LEDs), 10)
		b = append(b, " patterns="...)
		b = strconv.AppendInt(b, int64(p.Patterns), 10)
	case types.PatternChange:
		b = append(b, ' ')
		b = append(b, p.Dir...)
		b = append(b, " -> "...)
		b = strconv.AppendInt(b, int64(p.Index), 10)
		b = append(b, ' ')
		b = append(b, p.Name...)
	case types.ModeChange:
		b = append(b, " -> "...)
		b = append(b, p.Mode...)
	case types.HueChange:
		b = append(b, " -> "...)
		b = strconv.AppendUint(b, uint64(p.Hue), 10)
	case types.BrightnessChange:
		b = append(b, " -> "...)
		b = strconv.AppendUint(b, uint64(p.Level), 10)
	case types.EncoderTurn:
		b = append(b, ' ')
		if p.Delta > 0 {
			b = append(b, '+')
		}
		b = strconv.AppendInt(b, int64(p.Delta), 10)
		b = append(b, " pos="...)
		b = strconv.AppendInt(b, int64(p.Position), 10)
	case types.Stats:
		b = append(b, " frames="...)
		b = strconv.AppendUint(b, uint64(p.Frames), 10)
		b = append(b, " maintains="...)
		b = strconv.AppendUint(b, uint64(p.Maintains), 10)
		b = append(b, " show_errors="...)
		b = strconv.AppendUint(b, uint64(p.ShowErrors), 10)
	default:
		return nil, false
	}
	return b, true
}

func formatState(st types.ReelState) []byte {
	b := append(make([]byte, 0, 80), "[diag] mode="...)
	b = append(b, st.Mode...)
	b = append(b, " pattern="...)
	b = strconv.AppendInt(b, int64(st.Pattern), 10)
	b = append(b, ' ')
	b = append(b, st.PatternName...)
	b = append(b, " hue="...)
	b = strconv.AppendUint(b, uint64(st.SolidHue), 10)
	b = append(b, " brightness="...)
	b = strconv.AppendUint(b, uint64(st.Brightness), 10)
	return b
}
