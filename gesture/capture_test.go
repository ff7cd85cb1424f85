package gesture_test

import (
	"math"
	"testing"

	"github.com/rutmehta/swipecore/gesture"
	"github.com/rutmehta/swipecore/keylayout"
)

func testBounds() gesture.Rect {
	return gesture.Rect{MinX: 0, MinY: 0, MaxX: 100, MaxY: 200}
}

func TestBeginNormalizesAndClampsToUnitSquare(t *testing.T) {
	c := gesture.NewCapture(testBounds())
	c.Begin(50, 100, 0)
	if !c.Capturing() {
		t.Fatal("Capturing() should be true right after Begin")
	}
	samples, err := c.End(-10, 1000, 1)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if samples[0].Point.X != 0.5 || samples[0].Point.Y != 0.5 {
		t.Fatalf("Begin sample = %v, want (0.5, 0.5)", samples[0].Point)
	}
	last := samples[len(samples)-1].Point
	if last.X != 0 || last.Y != 1 {
		t.Fatalf("End sample out-of-bounds clamp = %v, want (0, 1)", last)
	}
}

func TestContinueDebouncesByTime(t *testing.T) {
	c := gesture.NewCapture(testBounds())
	c.Begin(0, 0, 0)
	// Arrives well before the debounce gate: should be dropped.
	if err := c.Continue(50, 50, 0.001); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	samples, _ := c.End(50, 50, 1)
	if len(samples) != 2 { // Begin's point + End's point only
		t.Fatalf("len(samples) = %d, want 2 (debounced sample dropped)", len(samples))
	}
}

func TestContinueFiltersJitterBelowMinDistance(t *testing.T) {
	c := gesture.NewCapture(testBounds())
	c.Begin(50, 100, 0)
	// Same point, enough time elapsed: should be dropped as jitter.
	if err := c.Continue(50, 100, 1); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	samples, _ := c.End(50, 100, 2)
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2 (jitter sample dropped)", len(samples))
	}
}

func TestContinueAcceptsGenuineMovement(t *testing.T) {
	c := gesture.NewCapture(testBounds())
	c.Begin(0, 0, 0)
	if err := c.Continue(100, 0, 1); err != nil {
		t.Fatalf("Continue: %v", err)
	}
	samples, _ := c.End(100, 200, 2)
	if len(samples) != 3 {
		t.Fatalf("len(samples) = %d, want 3", len(samples))
	}
}

func TestContinueAndEndRequireBegin(t *testing.T) {
	c := gesture.NewCapture(testBounds())
	if err := c.Continue(1, 1, 0); err != gesture.ErrNotCapturing {
		t.Fatalf("Continue before Begin = %v, want %v", err, gesture.ErrNotCapturing)
	}
	if _, err := c.End(1, 1, 0); err != gesture.ErrNotCapturing {
		t.Fatalf("End before Begin = %v, want %v", err, gesture.ErrNotCapturing)
	}
}

func TestEndReturnsToIdle(t *testing.T) {
	c := gesture.NewCapture(testBounds())
	c.Begin(0, 0, 0)
	if _, err := c.End(1, 1, 1); err != nil {
		t.Fatalf("End: %v", err)
	}
	if c.Capturing() {
		t.Fatal("Capturing() should be false after End")
	}
	if _, err := c.End(1, 1, 2); err != gesture.ErrNotCapturing {
		t.Fatalf("second End = %v, want %v", err, gesture.ErrNotCapturing)
	}
}

func TestBeginResetsPriorSession(t *testing.T) {
	c := gesture.NewCapture(testBounds())
	c.Begin(0, 0, 0)
	_ = c.Continue(100, 200, 1)
	c.Begin(50, 100, 2) // new gesture before the first one ended
	samples, _ := c.End(50, 100, 3)
	if len(samples) != 2 {
		t.Fatalf("len(samples) = %d, want 2 (prior session discarded)", len(samples))
	}
	if samples[0].Point.X != 0.5 {
		t.Fatalf("first sample X = %v, want 0.5 (from the new Begin)", samples[0].Point.X)
	}
}

func TestDeriveStraightLineConstantVelocity(t *testing.T) {
	samples := []gesture.Sample{
		{Point: keylayout.Point{X: 0, Y: 0}, Time: 0},
		{Point: keylayout.Point{X: 1, Y: 0}, Time: 1},
		{Point: keylayout.Point{X: 2, Y: 0}, Time: 2},
	}
	f := gesture.Derive(samples)
	for i, v := range f.Velocity {
		if math.Abs(v-1) > 1e-9 {
			t.Errorf("Velocity[%d] = %v, want 1", i, v)
		}
	}
	for i, d := range f.Direction {
		if math.Abs(d) > 1e-9 {
			t.Errorf("Direction[%d] = %v, want 0 (pointing along +X)", i, d)
		}
	}
	if f.Curvature[1] != 0 {
		t.Errorf("Curvature[1] = %v, want 0 for a straight line", f.Curvature[1])
	}
}

func TestDeriveEmptySamples(t *testing.T) {
	f := gesture.Derive(nil)
	if len(f.Velocity) != 0 || len(f.Direction) != 0 || len(f.Curvature) != 0 {
		t.Fatal("Derive(nil) should return empty feature slices")
	}
}
