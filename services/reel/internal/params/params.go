// Package params holds the user-tunable rendering parameters.
package params

import (
	"strconv"

	"demoreel-go/errcode"
	"demoreel-go/types"
	"demoreel-go/x/mathx"
)

const (
	HueStep  = 10  // degrees per encoder step in color mode
	HueRange = 360 // solid hue is kept in [0, HueRange)

	DefaultMaxBrightness = 256
)

// Store is owned by the frame loop; it is not safe for concurrent use.
type Store struct {
	baseHue    uint8 // animation hue, advanced once per maintenance tick
	solidHue   uint16
	brightness uint8
	max        int
}

// New validates cfg and returns a store seeded from it. A zero
// MaxBrightness selects DefaultMaxBrightness.
func New(cfg types.ParamsConfig) (*Store, error) {
	const op = "params.new"
	max := cfg.MaxBrightness
	if max == 0 {
		max = DefaultMaxBrightness
	}
	if max < 1 || max > 256 {
		return nil, errcode.New(errcode.InvalidParams, op, "max_brightness out of range: "+strconv.Itoa(max))
	}
	if cfg.SolidHue >= HueRange {
		return nil, errcode.New(errcode.InvalidParams, op, "solid_hue out of range: "+strconv.Itoa(int(cfg.SolidHue)))
	}
	if int(cfg.Brightness) >= max {
		return nil, errcode.New(errcode.InvalidParams, op, "brightness not below max_brightness")
	}
	return &Store{solidHue: cfg.SolidHue, brightness: cfg.Brightness, max: max}, nil
}

func (s *Store) BaseHue() uint8     { return s.baseHue }
func (s *Store) SolidHue() uint16   { return s.solidHue }
func (s *Store) Brightness() uint8  { return s.brightness }
func (s *Store) MaxBrightness() int { return s.max }

// TickBaseHue advances the animation hue by one, wrapping at 256.
func (s *Store) TickBaseHue() uint8 {
	s.baseHue++
	return s.baseHue
}

// AdjustHue moves the solid hue one step in the direction of dir's sign.
func (s *Store) AdjustHue(dir int) uint16 {
	h := int(s.solidHue) + mathx.Sign(dir)*HueStep
	s.solidHue = uint16(mathx.Wrap(h, HueRange))
	return s.solidHue
}

// AdjustBrightness moves brightness one level in the direction of dir's
// sign, wrapping modulo MaxBrightness.
func (s *Store) AdjustBrightness(dir int) uint8 {
	b := int(s.brightness) + mathx.Sign(dir)
	s.brightness = uint8(mathx.Wrap(b, s.max))
	return s.brightness
}
