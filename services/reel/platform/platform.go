// Package platform binds the reel to board hardware: button inputs, the
// quadrature encoder, the WS2812 strip and a console for diagnostics.
//
// The MCU build uses TinyGo machine pins and drivers; every other build gets
// in-memory fakes that tests and the simulator drive directly.
package platform

import (
	"image/color"
	"io"

	"demoreel-go/services/reel/internal/core"
	"demoreel-go/services/reel/internal/pattern"
	"demoreel-go/services/reel/internal/rotary"
)

// Resources are the collaborators the reel service needs.
type Resources struct {
	Up, Down  core.Pin
	EncButton core.Pin // nil when the encoder has no switch
	Encoder   rotary.Source
	Strip     core.Strip
	Console   io.Writer
}

// scaleInto copies src into dst with every channel scaled by level/256.
// dst must be at least len(src) long.
func scaleInto(dst, src []color.RGBA, level uint8) []color.RGBA {
	dst = dst[:len(src)]
	if level == 0xFF {
		copy(dst, src)
		return dst
	}
	for i, c := range src {
		dst[i] = pattern.ScaleColor(c, level)
	}
	return dst
}
