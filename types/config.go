package types

// Reel configuration supplied on topic "config/reel".

type Config struct {
	Device        string        `json:"device"`
	Strip         StripConfig   `json:"strip"`
	Inputs        InputConfig   `json:"inputs"`
	Params        ParamsConfig  `json:"params"`
	Patterns      []string      `json:"patterns"`
	MaintainMs    uint16        `json:"maintain_ms"`
	ReverseBrowse bool          `json:"reverse_browse,omitempty"` // encoder turned back in pattern mode selects the previous pattern
	BootDelayMs   uint32        `json:"boot_delay_ms"`
	StatsEverySec uint16        `json:"stats_every_s,omitempty"` // 0 disables the periodic stats event
	Console       ConsoleConfig `json:"console"`
}

type StripConfig struct {
	Pin  int    `json:"pin"`
	LEDs int    `json:"leds"`
	FPS  uint32 `json:"fps"`
}

type InputConfig struct {
	UpPin      int           `json:"up_pin"`
	DownPin    int           `json:"down_pin"`
	DebounceMs uint16        `json:"debounce_ms"`
	Encoder    EncoderConfig `json:"encoder"`
}

type EncoderConfig struct {
	PinA      int  `json:"pin_a"`
	PinB      int  `json:"pin_b"`
	ButtonPin int  `json:"button_pin"`
	Precision int  `json:"precision,omitempty"` // quadrature steps per reported count
	Min       int  `json:"min"`
	Max       int  `json:"max"`
	Circular  bool `json:"circular"`
}

type ParamsConfig struct {
	SolidHue      uint16 `json:"solid_hue"`      // 0..359
	Brightness    uint8  `json:"brightness"`     // 0..MaxBrightness-1
	MaxBrightness int    `json:"max_brightness"` // 1..256, brightness wraps modulo this
}

type ConsoleConfig struct {
	UART string `json:"uart,omitempty"` // "uart0", "uart1" or "" for the default console
	Baud uint32 `json:"baud,omitempty"`
	TX   int    `json:"tx,omitempty"`
	RX   int    `json:"rx,omitempty"`
}
