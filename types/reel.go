package types

// ---- Reel state (retained on "reel/state") ----

type ReelState struct {
	Mode        string `json:"mode"` // "color", "pattern", "brightness"
	Pattern     int    `json:"pattern"`
	PatternName string `json:"pattern_name"`
	SolidHue    uint16 `json:"solid_hue"`
	Brightness  uint8  `json:"brightness"`
	BaseHue     uint8  `json:"base_hue"`
	TS          int64  `json:"ts_ms"`
}

// ---- Events (published on "reel/event/<kind>") ----

type EventKind string

const (
	EventBoot       EventKind = "boot"
	EventPattern    EventKind = "pattern"
	EventMode       EventKind = "mode"
	EventHue        EventKind = "hue"
	EventBrightness EventKind = "brightness"
	EventEncoder    EventKind = "encoder"
	EventStats      EventKind = "stats"
)

// PatternChange reports a registry move. Dir is "next", "previous" or "select".
type PatternChange struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Dir   string `json:"dir"`
}

type ModeChange struct {
	Mode string `json:"mode"`
}

type HueChange struct {
	Hue uint16 `json:"hue"`
}

type BrightnessChange struct {
	Level uint8 `json:"level"`
}

type EncoderTurn struct {
	Delta    int16 `json:"delta"`
	Position int   `json:"position"`
}

type Boot struct {
	Device   string `json:"device"`
	LEDs     int    `json:"leds"`
	Patterns int    `json:"patterns"`
}

type Stats struct {
	Frames     uint32 `json:"frames"`
	Maintains  uint32 `json:"maintains"`
	ShowErrors uint32 `json:"show_errors"`
}
