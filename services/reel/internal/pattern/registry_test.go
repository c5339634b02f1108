package pattern

import (
	"errors"
	"testing"

	"demoreel-go/errcode"

	"pgregory.net/rapid"
)

func TestNextPreviousWrap(t *testing.T) {
	r, err := NewRegistry(DefaultKinds()...)
	if err != nil {
		t.Fatal(err)
	}
	if r.Current() != Purple {
		t.Fatalf("initial = %v, want purple", r.Current())
	}
	if i := r.Previous(); i != 7 {
		t.Fatalf("previous from 0 = %d, want 7", i)
	}
	if r.Current() != BPM {
		t.Fatalf("current = %v, want bpm", r.Current())
	}
	if i := r.Next(); i != 0 {
		t.Fatalf("next from 7 = %d, want 0", i)
	}
}

func TestThreeDownPressesFromZero(t *testing.T) {
	r, _ := NewRegistry(DefaultKinds()...)
	for i := 0; i < 3; i++ {
		r.Previous()
	}
	if r.Index() != 5 || r.Current() != Sinelon {
		t.Fatalf("index = %d (%v), want 5 (sinelon)", r.Index(), r.Current())
	}
}

func TestIndexStaysInRange(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, int(numKinds)).Draw(t, "n")
		r, err := NewRegistry(DefaultKinds()[:n]...)
		if err != nil {
			t.Fatal(err)
		}
		moves := rapid.SliceOf(rapid.Bool()).Draw(t, "moves")
		for _, fwd := range moves {
			if fwd {
				r.Next()
			} else {
				r.Previous()
			}
			if r.Index() < 0 || r.Index() >= r.Len() {
				t.Fatalf("index %d out of [0,%d)", r.Index(), r.Len())
			}
		}
	})
}

func TestFullCycleReturnsToStart(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		r, _ := NewRegistry(DefaultKinds()...)
		start := r.Select(rapid.Int().Draw(t, "start"))
		fwd := rapid.Bool().Draw(t, "fwd")
		for i := 0; i < r.Len(); i++ {
			if fwd {
				r.Next()
			} else {
				r.Previous()
			}
		}
		if r.Index() != start {
			t.Fatalf("index = %d after %d moves, want %d", r.Index(), r.Len(), start)
		}
	})
}

func TestEmptyRegistryRejected(t *testing.T) {
	if _, err := NewRegistry(); !errors.Is(err, errcode.InvalidParams) {
		t.Fatalf("err = %v, want invalid_params", err)
	}
	if _, err := NewRegistry(Kind(200)); !errors.Is(err, errcode.UnknownPattern) {
		t.Fatalf("err = %v, want unknown_pattern", err)
	}
}

func TestFromNames(t *testing.T) {
	r, err := FromNames([]string{"rainbow", "bpm"})
	if err != nil {
		t.Fatal(err)
	}
	if r.Len() != 2 || r.At(1) != BPM {
		t.Fatalf("kinds = %v", r.Kinds())
	}
	if _, err := FromNames([]string{"strobe"}); !errors.Is(err, errcode.UnknownPattern) {
		t.Fatalf("err = %v, want unknown_pattern", err)
	}
	d, _ := FromNames(nil)
	if d.Len() != 8 {
		t.Fatalf("default len = %d, want 8", d.Len())
	}
}

func TestKindNamesRoundTrip(t *testing.T) {
	for _, k := range DefaultKinds() {
		got, err := ParseKind(k.String())
		if err != nil || got != k {
			t.Fatalf("ParseKind(%q) = %v, %v", k.String(), got, err)
		}
	}
}
