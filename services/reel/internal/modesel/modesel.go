// Package modesel tracks which parameter the rotary encoder currently edits.
package modesel

import (
	"demoreel-go/errcode"
)

type Mode uint8

const (
	Color Mode = iota
	Pattern
	Brightness

	numModes
)

var names = [numModes]string{"color", "pattern", "brightness"}

// Next returns the cyclic successor: Color -> Pattern -> Brightness -> Color.
func (m Mode) Next() Mode { return (m + 1) % numModes }

func (m Mode) String() string {
	if m < numModes {
		return names[m]
	}
	return "unknown"
}

func ParseMode(s string) (Mode, error) {
	for i, n := range names {
		if n == s {
			return Mode(i), nil
		}
	}
	return Color, errcode.New(errcode.InvalidParams, "modesel.parse", "unknown mode "+s)
}

// Selector holds the current mode. The zero value starts in Color.
type Selector struct {
	mode Mode
}

func (s *Selector) Mode() Mode { return s.mode }

// Advance moves to the next mode and returns it.
func (s *Selector) Advance() Mode {
	s.mode = s.mode.Next()
	return s.mode
}
