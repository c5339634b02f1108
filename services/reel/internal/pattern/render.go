package pattern

import (
	"image/color"
	"math/rand"
	"time"
)

// Frame is the input to one render pass. Pixels persist between frames so
// that fading patterns leave trails.
type Frame struct {
	Pixels  []color.RGBA
	Now     time.Duration // time since boot
	Rand    *rand.Rand
	BaseHue uint8
}

// Render draws kind into f.Pixels.
func Render(kind Kind, f Frame) {
	if len(f.Pixels) == 0 {
		return
	}
	switch kind {
	case Purple:
		FillSolid(f.Pixels, DarkViolet)
	case Blue:
		FillSolid(f.Pixels, PureBlue)
	case Rainbow:
		rainbow(f)
	case RainbowGlitter:
		rainbow(f)
		AddGlitter(f.Pixels, f.Rand, 80)
	case Confetti:
		confetti(f)
	case Sinelon:
		sinelon(f)
	case Juggle:
		juggle(f)
	case BPM:
		bpm(f)
	}
}

func rainbow(f Frame) { FillRainbow(f.Pixels, f.BaseHue, 7) }

// confetti: random speckles that blink in and fade.
func confetti(f Frame) {
	FadeToBlackBy(f.Pixels, 10)
	i := f.Rand.Intn(len(f.Pixels))
	f.Pixels[i] = Add(f.Pixels[i], HSV(f.BaseHue+uint8(f.Rand.Intn(64)), 200, 255))
}

// sinelon: one dot sweeping back and forth with a fading trail.
func sinelon(f Frame) {
	FadeToBlackBy(f.Pixels, 20)
	i := BeatSin16(13, 0, uint16(len(f.Pixels)-1), f.Now)
	f.Pixels[i] = Add(f.Pixels[i], HSV(f.BaseHue, 255, 192))
}

// juggle: eight dots weaving in and out of sync.
func juggle(f Frame) {
	FadeToBlackBy(f.Pixels, 20)
	last := uint16(len(f.Pixels) - 1)
	var hue uint8
	for i := uint16(0); i < 8; i++ {
		p := BeatSin16(i+7, 0, last, f.Now)
		f.Pixels[p] = Max(f.Pixels[p], HSV(hue, 200, 255))
		hue += 32
	}
}

// bpm: palette stripes pulsing at 62 beats per minute.
func bpm(f Frame) {
	b := BeatSin8(62, 64, 255, f.Now)
	for i := range f.Pixels {
		f.Pixels[i] = PartyColors.At(f.BaseHue+uint8(i*2), b-f.BaseHue+uint8(i*10))
	}
}
