// services/reel/platform/factories_rp2xxx.go
//go:build rp2040 || rp2350

package platform

import (
	"image/color"
	"io"
	"machine"
	"os"
	"runtime/interrupt"
	"strconv"

	uartx "github.com/jangala-dev/tinygo-uartx/uartx"
	"tinygo.org/x/drivers/encoders"
	"tinygo.org/x/drivers/ws2812"

	"demoreel-go/errcode"
	"demoreel-go/types"
)

// Board is the config profile selected for this build.
const Board = "pico"

const defaultPrecision = 4

// Setup configures pins, the encoder ISR, the strip and the console.
func Setup(cfg types.Config) (Resources, error) {
	const op = "platform.setup"
	in := cfg.Inputs
	for _, n := range []int{cfg.Strip.Pin, in.UpPin, in.DownPin, in.Encoder.PinA, in.Encoder.PinB} {
		if !validPin(n) {
			return Resources{}, errcode.New(errcode.UnknownPin, op, "gpio "+strconv.Itoa(n))
		}
	}

	res := Resources{
		Up:      inputPullup(in.UpPin),
		Down:    inputPullup(in.DownPin),
		Encoder: quadrature(in.Encoder),
		Strip:   newStrip(cfg.Strip),
		Console: console(cfg.Console),
	}
	// A negative button pin means the encoder has no switch.
	if n := in.Encoder.ButtonPin; n >= 0 {
		if !validPin(n) {
			return Resources{}, errcode.New(errcode.UnknownPin, op, "gpio "+strconv.Itoa(n))
		}
		res.EncButton = inputPullup(n)
	}
	return res, nil
}

// RP2 user GPIOs are GP0..GP28.
func validPin(n int) bool { return n >= 0 && n <= 28 }

func inputPullup(n int) machine.Pin {
	p := machine.Pin(n)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return p
}

// quadrature starts the driver's pin-change ISR, which only updates the
// position counter.
func quadrature(c types.EncoderConfig) *encoders.QuadratureDevice {
	prec := c.Precision
	if prec <= 0 {
		prec = defaultPrecision
	}
	enc := encoders.NewQuadratureViaInterrupt(machine.Pin(c.PinA), machine.Pin(c.PinB))
	enc.Configure(encoders.QuadratureConfig{Precision: prec})
	return enc
}

func console(c types.ConsoleConfig) io.Writer {
	var hw *uartx.UART
	switch c.UART {
	case "uart0":
		hw = uartx.UART0
	case "uart1":
		hw = uartx.UART1
	default:
		return os.Stdout // USB CDC
	}
	// Defaults inside uartx apply to zero fields.
	_ = hw.Configure(uartx.UARTConfig{
		BaudRate: c.Baud,
		TX:       machine.Pin(c.TX),
		RX:       machine.Pin(c.RX),
	})
	return hw
}

// ---- WS2812 strip ----

type rp2Strip struct {
	dev        ws2812.Device
	buf        []color.RGBA
	brightness uint8
}

func newStrip(c types.StripConfig) *rp2Strip {
	pin := machine.Pin(c.Pin)
	pin.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return &rp2Strip{
		dev:        ws2812.New(pin),
		buf:        make([]color.RGBA, c.LEDs),
		brightness: 0xFF,
	}
}

func (s *rp2Strip) SetBrightness(level uint8) { s.brightness = level }

// Show transmits px with brightness applied. Interrupts are held off for
// the bit-banged transfer.
func (s *rp2Strip) Show(px []color.RGBA) error {
	if len(px) > len(s.buf) {
		px = px[:len(s.buf)]
	}
	out := scaleInto(s.buf, px, s.brightness)
	state := interrupt.Disable()
	err := s.dev.WriteColors(out)
	interrupt.Restore(state)
	return err
}
