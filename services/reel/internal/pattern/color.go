package pattern

import (
	"image/color"
	"math"
	"math/rand"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

var (
	DarkViolet = color.RGBA{R: 0x94, G: 0x00, B: 0xD3, A: 0xFF}
	PureBlue   = color.RGBA{R: 0x00, G: 0x00, B: 0xFF, A: 0xFF}
	White      = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	Black      = color.RGBA{A: 0xFF}
)

// HSV converts a 0..255 hue wheel position with 0..255 saturation and value.
func HSV(h, s, v uint8) color.RGBA {
	return fromColorful(colorful.Hsv(float64(h)*360/256, float64(s)/255, float64(v)/255))
}

// HSV360 is HSV with the hue given in degrees.
func HSV360(h uint16, s, v uint8) color.RGBA {
	return fromColorful(colorful.Hsv(float64(h%360), float64(s)/255, float64(v)/255))
}

func fromColorful(c colorful.Color) color.RGBA {
	r, g, b := c.Clamped().RGB255()
	return color.RGBA{R: r, G: g, B: b, A: 0xFF}
}

// Scale8 multiplies v by scale/256, keeping 255*255 at 255.
func Scale8(v, scale uint8) uint8 {
	return uint8((uint16(v) * (uint16(scale) + 1)) >> 8)
}

// ScaleColor applies Scale8 to each channel.
func ScaleColor(c color.RGBA, scale uint8) color.RGBA {
	return color.RGBA{R: Scale8(c.R, scale), G: Scale8(c.G, scale), B: Scale8(c.B, scale), A: c.A}
}

func qadd8(a, b uint8) uint8 {
	if s := uint16(a) + uint16(b); s < 0xFF {
		return uint8(s)
	}
	return 0xFF
}

// Add is a per-channel saturating sum.
func Add(a, b color.RGBA) color.RGBA {
	return color.RGBA{R: qadd8(a.R, b.R), G: qadd8(a.G, b.G), B: qadd8(a.B, b.B), A: 0xFF}
}

// Max keeps the brighter of each channel.
func Max(a, b color.RGBA) color.RGBA {
	return color.RGBA{R: max(a.R, b.R), G: max(a.G, b.G), B: max(a.B, b.B), A: 0xFF}
}

func FillSolid(px []color.RGBA, c color.RGBA) {
	for i := range px {
		px[i] = c
	}
}

// FillRainbow paints consecutive hues starting at start, delta apart.
func FillRainbow(px []color.RGBA, start, delta uint8) {
	h := start
	for i := range px {
		px[i] = HSV(h, 255, 255)
		h += delta
	}
}

// FadeToBlackBy dims every pixel by amount/256.
func FadeToBlackBy(px []color.RGBA, amount uint8) {
	keep := 255 - amount
	for i := range px {
		px[i] = ScaleColor(px[i], keep)
	}
}

// AddGlitter adds a white speck to one random pixel with probability
// chance/256.
func AddGlitter(px []color.RGBA, rnd *rand.Rand, chance uint8) {
	if len(px) == 0 {
		return
	}
	if rnd.Intn(256) < int(chance) {
		i := rnd.Intn(len(px))
		px[i] = Add(px[i], White)
	}
}

func beat(bpm float64, now time.Duration) float64 {
	phase := math.Mod(now.Seconds()*bpm/60, 1)
	return (math.Sin(2*math.Pi*phase) + 1) / 2
}

// BeatSin8 is a sine wave oscillating between lo and hi at bpm beats per minute.
func BeatSin8(bpm, lo, hi uint8, now time.Duration) uint8 {
	return lo + uint8(beat(float64(bpm), now)*float64(hi-lo)+0.5)
}

// BeatSin16 is BeatSin8 over a wider range.
func BeatSin16(bpm, lo, hi uint16, now time.Duration) uint16 {
	return lo + uint16(beat(float64(bpm), now)*float64(hi-lo)+0.5)
}

// Palette16 is a 16-entry gradient sampled with linear blending.
type Palette16 [16]color.RGBA

func rgb(v uint32) color.RGBA {
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xFF}
}

var PartyColors = Palette16{
	rgb(0x5500AB), rgb(0x84007C), rgb(0xB5004B), rgb(0xE5001B),
	rgb(0xE81700), rgb(0xB84700), rgb(0xAB7700), rgb(0xABAB00),
	rgb(0xAB5500), rgb(0xDD2200), rgb(0xF2000E), rgb(0xC2003E),
	rgb(0x8F0071), rgb(0x5F00A1), rgb(0x2F00D0), rgb(0x0007F9),
}

func lerp8(a, b, frac uint8) uint8 {
	return uint8((int(a)*(16-int(frac)) + int(b)*int(frac)) / 16)
}

// At samples the palette at index (0..255 spans the wrap-around gradient)
// and scales the result by brightness.
func (p *Palette16) At(index, brightness uint8) color.RGBA {
	hi, lo := index>>4, index&0x0F
	a, b := p[hi], p[(hi+1)&0x0F]
	c := color.RGBA{R: lerp8(a.R, b.R, lo), G: lerp8(a.G, b.G, lo), B: lerp8(a.B, b.B, lo), A: 0xFF}
	if brightness != 0xFF {
		c = ScaleColor(c, brightness)
	}
	return c
}
