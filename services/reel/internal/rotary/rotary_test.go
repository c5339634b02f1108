package rotary

import (
	"sync"
	"testing"
)

type fakeLevel struct {
	mu    sync.Mutex
	level bool
}

func (p *fakeLevel) Get() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.level
}

func (p *fakeLevel) set(v bool) {
	p.mu.Lock()
	p.level = v
	p.mu.Unlock()
}

func TestPositionDeltaConsumedOnce(t *testing.T) {
	var c Counter
	r := New(&c, nil)

	c.Step(+1)
	c.Step(+1)
	if d := r.PositionDelta(); d != 2 {
		t.Fatalf("delta = %d, want 2", d)
	}
	if d := r.PositionDelta(); d != 0 {
		t.Fatalf("second read = %d, want 0", d)
	}
	c.Step(-1)
	if d := r.PositionDelta(); d != -1 {
		t.Fatalf("delta = %d, want -1", d)
	}
	if r.Position() != 1 {
		t.Fatalf("position = %d, want 1", r.Position())
	}
}

func TestNewStartsAtZeroRegardlessOfCount(t *testing.T) {
	var c Counter
	c.Set(42)
	r := New(&c, nil)
	if d := r.PositionDelta(); d != 0 {
		t.Fatalf("delta = %d, want 0", d)
	}
}

func TestStepIgnoresMagnitude(t *testing.T) {
	var c Counter
	c.Step(5)
	c.Step(0)
	c.Step(-3)
	if c.Position() != 0 {
		t.Fatalf("count = %d, want 0", c.Position())
	}
}

func TestBoundaries(t *testing.T) {
	cases := []struct {
		name     string
		circular bool
		steps    int
		want     int
	}{
		{"clamp high", false, 12, 10},
		{"clamp low", false, -3, 0},
		{"wrap high", true, 12, 1},
		{"wrap low", true, -1, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var c Counter
			r := New(&c, nil)
			r.SetBoundaries(0, 10, tc.circular)
			for i := 0; i < abs(tc.steps); i++ {
				if tc.steps > 0 {
					c.Step(1)
				} else {
					c.Step(-1)
				}
				r.PositionDelta()
			}
			if r.Position() != tc.want {
				t.Fatalf("position = %d, want %d", r.Position(), tc.want)
			}
		})
	}
}

func TestUnboundedByDefault(t *testing.T) {
	var c Counter
	r := New(&c, nil)
	c.Set(-500)
	r.PositionDelta()
	if r.Position() != -500 {
		t.Fatalf("position = %d, want -500", r.Position())
	}
}

func TestButtonReleasedEdge(t *testing.T) {
	pin := &fakeLevel{level: true} // pulled up, released
	var c Counter
	r := New(&c, ActiveLow(pin))

	if r.ButtonReleased() {
		t.Fatal("no edge expected while idle")
	}
	pin.set(false)
	if r.ButtonReleased() {
		t.Fatal("press must not report a release")
	}
	if r.ButtonState() != Pressed {
		t.Fatalf("state = %v, want pressed", r.ButtonState())
	}
	if r.ButtonReleased() {
		t.Fatal("held button must not report a release")
	}
	pin.set(true)
	if !r.ButtonReleased() {
		t.Fatal("expected release edge")
	}
	if r.ButtonReleased() {
		t.Fatal("release must be reported once")
	}
}

func TestConcurrentSteps(t *testing.T) {
	var c Counter
	var wg sync.WaitGroup
	for g := 0; g < 4; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 1000; i++ {
				c.Step(1)
			}
		}()
	}
	wg.Wait()
	if c.Position() != 4000 {
		t.Fatalf("count = %d, want 4000", c.Position())
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
