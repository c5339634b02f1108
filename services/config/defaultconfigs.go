package config

// -----------------------------------------------------------------------------
// Embedded configuration
//
// Key: device ID (platform.Board for the build)
// Val: raw JSON bytes for that device, applied over Defaults()
// -----------------------------------------------------------------------------

const cfgPico = `{
  "strip": {"pin": 16, "leds": 103, "fps": 120},
  "inputs": {
    "up_pin": 14,
    "down_pin": 15,
    "debounce_ms": 50,
    "encoder": {"pin_a": 10, "pin_b": 11, "button_pin": 12, "precision": 4}
  },
  "params": {"solid_hue": 0, "brightness": 96, "max_brightness": 256},
  "maintain_ms": 20,
  "boot_delay_ms": 3000,
  "stats_every_s": 30,
  "console": {"uart": "uart0", "baud": 115200, "tx": 0, "rx": 1}
}`

const cfgESP32Devkit = `{
  "strip": {"pin": 23, "leds": 103, "fps": 120},
  "inputs": {
    "up_pin": 19,
    "down_pin": 21,
    "encoder": {"pin_a": 32, "pin_b": 33, "button_pin": 25}
  },
  "params": {"brightness": 243},
  "boot_delay_ms": 3000
}`

const cfgSim = `{
  "strip": {"leds": 48, "fps": 60},
  "inputs": {"encoder": {"button_pin": 0}},
  "params": {"solid_hue": 200, "brightness": 200},
  "patterns": ["purple", "blue", "rainbow", "rainbow_glitter", "confetti", "sinelon", "juggle", "bpm"],
  "boot_delay_ms": 0,
  "stats_every_s": 5
}`

var embeddedConfigs = map[string][]byte{
	"pico":         []byte(cfgPico),
	"esp32-devkit": []byte(cfgESP32Devkit),
	"sim":          []byte(cfgSim),
}
