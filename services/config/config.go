package config

import (
	"context"
	"encoding/json"
	"strconv"

	"demoreel-go/bus"
	"demoreel-go/errcode"
	"demoreel-go/types"
)

// -----------------------------------------------------------------------------
// String constants (live in flash, not RAM)
// -----------------------------------------------------------------------------

const (
	serviceName  = "config"
	configPrefix = "config"
	reelKey      = "reel"
)

// TopicReel carries the active reel configuration (retained).
var TopicReel = bus.T(configPrefix, reelKey)

// EmbeddedConfigLookup allows overriding how configs are resolved.
var EmbeddedConfigLookup = func(device string) ([]byte, bool) {
	b, ok := embeddedConfigs[device]
	return b, ok
}

// Defaults are applied before the board's embedded JSON.
func Defaults() types.Config {
	return types.Config{
		Strip: types.StripConfig{LEDs: 103, FPS: 120},
		Inputs: types.InputConfig{
			DebounceMs: 50,
			Encoder:    types.EncoderConfig{ButtonPin: -1, Precision: 4},
		},
		Params:      types.ParamsConfig{Brightness: 243, MaxBrightness: 256},
		MaintainMs:  20,
		BootDelayMs: 3000,
	}
}

// Load resolves the embedded config for device on top of Defaults.
func Load(device string) (types.Config, error) {
	const op = "config.load"
	raw, ok := EmbeddedConfigLookup(device)
	if !ok || len(raw) == 0 {
		return types.Config{}, errcode.New(errcode.UnknownDevice, op, "no embedded config for device: "+device)
	}
	cfg := Defaults()
	if err := json.Unmarshal(raw, &cfg); err != nil {
		return types.Config{}, errcode.Wrap(errcode.InvalidConfig, op, err)
	}
	cfg.Device = device
	if err := Validate(cfg); err != nil {
		return types.Config{}, err
	}
	return cfg, nil
}

// Validate checks the fields the reel cannot default.
func Validate(cfg types.Config) error {
	const op = "config.validate"
	bad := func(msg string) error { return errcode.New(errcode.InvalidConfig, op, msg) }
	switch {
	case cfg.Strip.LEDs < 1 || cfg.Strip.LEDs > 4096:
		return bad("strip.leds out of range: " + strconv.Itoa(cfg.Strip.LEDs))
	case cfg.Strip.FPS == 0 || cfg.Strip.FPS > 1000:
		return bad("strip.fps out of range")
	case cfg.MaintainMs == 0:
		return bad("maintain_ms must be positive")
	case cfg.Params.MaxBrightness < 1 || cfg.Params.MaxBrightness > 256:
		return bad("params.max_brightness out of range")
	case int(cfg.Params.Brightness) >= cfg.Params.MaxBrightness:
		return bad("params.brightness not below max_brightness")
	case cfg.Params.SolidHue >= 360:
		return bad("params.solid_hue out of range")
	case cfg.Inputs.Encoder.Min > cfg.Inputs.Encoder.Max:
		return bad("inputs.encoder min above max")
	}
	return nil
}

// -----------------------------------------------------------------------------
// Config Service
// -----------------------------------------------------------------------------

type ConfigService struct {
	Name   string
	Device string
}

func NewConfigService(device string) *ConfigService {
	return &ConfigService{Name: serviceName, Device: device}
}

// publishConfig loads the device config and publishes it as a retained message.
func (s *ConfigService) publishConfig(conn *bus.Connection) (types.Config, error) {
	cfg, err := Load(s.Device)
	if err != nil {
		return types.Config{}, err
	}
	conn.Publish(conn.NewMessage(TopicReel, cfg, true))
	return cfg, nil
}

// Start publishes the config and returns it. Subscribers that arrive later
// still receive it as a retained message.
func (s *ConfigService) Start(ctx context.Context, conn *bus.Connection) (types.Config, error) {
	if err := ctx.Err(); err != nil {
		return types.Config{}, err
	}
	cfg, err := s.publishConfig(conn)
	if err != nil {
		println("[config]", err.Error())
	}
	return cfg, err
}
