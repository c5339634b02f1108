// Package pattern holds the reel of animations and their renderers.
package pattern

import "demoreel-go/errcode"

// Kind identifies one animation. The set is closed.
type Kind uint8

const (
	Purple Kind = iota
	Blue
	Rainbow
	RainbowGlitter
	Confetti
	Sinelon
	Juggle
	BPM

	numKinds
)

var kindNames = [numKinds]string{
	Purple:         "purple",
	Blue:           "blue",
	Rainbow:        "rainbow",
	RainbowGlitter: "rainbow_glitter",
	Confetti:       "confetti",
	Sinelon:        "sinelon",
	Juggle:         "juggle",
	BPM:            "bpm",
}

func (k Kind) String() string {
	if k < numKinds {
		return kindNames[k]
	}
	return "unknown"
}

func (k Kind) Valid() bool { return k < numKinds }

func ParseKind(s string) (Kind, error) {
	for i, n := range kindNames {
		if n == s {
			return Kind(i), nil
		}
	}
	return 0, errcode.New(errcode.UnknownPattern, "pattern.parse", s)
}

// DefaultKinds is the stock reel order.
func DefaultKinds() []Kind {
	return []Kind{Purple, Blue, Rainbow, RainbowGlitter, Confetti, Sinelon, Juggle, BPM}
}
