package decoder

import (
	"math"
	"testing"

	"github.com/rutmehta/swipecore/keylayout"
)

func straightLine(n int, y float64) []keylayout.Point {
	out := make([]keylayout.Point, n)
	for i := range out {
		out[i] = keylayout.Point{X: float64(i) / float64(n-1), Y: y}
	}
	return out
}

func TestBandedDTWIdenticalPathsIsZero(t *testing.T) {
	a := straightLine(20, 0.5)
	b := straightLine(20, 0.5)
	d := bandedDTW(a, b, DefaultBand, false, math.Inf(1))
	if d != 0 {
		t.Fatalf("bandedDTW(a, a) = %v, want 0", d)
	}
}

func TestBandedDTWIsSymmetric(t *testing.T) {
	a := straightLine(15, 0.2)
	b := straightLine(15, 0.8)
	d1 := bandedDTW(a, b, DefaultBand, false, math.Inf(1))
	d2 := bandedDTW(b, a, DefaultBand, false, math.Inf(1))
	if math.Abs(d1-d2) > 1e-12 {
		t.Fatalf("bandedDTW not symmetric: %v vs %v", d1, d2)
	}
}

func TestBandedDTWMonotonicInSeparation(t *testing.T) {
	a := straightLine(15, 0.2)
	near := straightLine(15, 0.3)
	far := straightLine(15, 0.9)
	dNear := bandedDTW(a, near, DefaultBand, false, math.Inf(1))
	dFar := bandedDTW(a, far, DefaultBand, false, math.Inf(1))
	if dNear >= dFar {
		t.Fatalf("dNear (%v) should be less than dFar (%v)", dNear, dFar)
	}
}

func TestBandedDTWPruningMatchesUnprunedOutcome(t *testing.T) {
	a := straightLine(20, 0.2)
	b := straightLine(20, 0.9)
	unpruned := bandedDTW(a, b, DefaultBand, true, math.Inf(1))

	// A threshold tighter than the true distance should prune to +Inf;
	// a threshold looser than it should leave the result unchanged.
	if got := bandedDTW(a, b, DefaultBand, true, unpruned*0.5); !math.IsInf(got, 1) {
		t.Fatalf("bandedDTW with a too-tight prune = %v, want +Inf", got)
	}
	if got := bandedDTW(a, b, DefaultBand, true, unpruned*2); got != unpruned {
		t.Fatalf("bandedDTW with a loose prune = %v, want %v (same as unpruned)", got, unpruned)
	}
}

func TestBandedDTWEmptyInput(t *testing.T) {
	if got := bandedDTW(nil, straightLine(5, 0), DefaultBand, false, math.Inf(1)); !math.IsInf(got, 1) {
		t.Fatalf("bandedDTW with an empty path = %v, want +Inf", got)
	}
}
