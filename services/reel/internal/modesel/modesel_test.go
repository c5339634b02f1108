package modesel

import (
	"testing"

	"pgregory.net/rapid"
)

func TestAdvanceOrder(t *testing.T) {
	var s Selector
	if s.Mode() != Color {
		t.Fatalf("initial mode = %v, want color", s.Mode())
	}
	want := []Mode{Pattern, Brightness, Color}
	for i, w := range want {
		if got := s.Advance(); got != w {
			t.Fatalf("advance %d = %v, want %v", i, got, w)
		}
	}
}

func TestThreeAdvancesReturnToStart(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		start := Mode(rapid.IntRange(0, int(numModes)-1).Draw(t, "start"))
		s := Selector{mode: start}
		for i := 0; i < 3; i++ {
			s.Advance()
		}
		if s.Mode() != start {
			t.Fatalf("after 3 advances mode = %v, want %v", s.Mode(), start)
		}
	})
}

func TestParseMode(t *testing.T) {
	for _, m := range []Mode{Color, Pattern, Brightness} {
		got, err := ParseMode(m.String())
		if err != nil || got != m {
			t.Fatalf("ParseMode(%q) = %v, %v", m.String(), got, err)
		}
	}
	if _, err := ParseMode("volume"); err == nil {
		t.Fatal("expected error for unknown mode")
	}
	if Mode(9).String() != "unknown" {
		t.Fatal("out of range mode should stringify as unknown")
	}
}
