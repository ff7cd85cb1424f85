package template

import (
	"math"

	"github.com/rutmehta/swipecore/keylayout"
)

// Resample returns exactly n points evenly spaced by arc length along
// the polyline points. It walks the polyline's cumulative-length table
// and linearly interpolates between the two original points that
// straddle each target distance, rather than simply re-stepping a
// segment-by-segment cursor (which drifts when segments are uneven).
//
// A polyline with zero total length (every point identical, including
// the single-point case) resamples to n copies of points[0]. An empty
// input returns nil.
func Resample(points []keylayout.Point, n int) []keylayout.Point {
	if len(points) == 0 || n <= 0 {
		return nil
	}
	if len(points) == 1 {
		return repeat(points[0], n)
	}

	cumulative := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cumulative[i] = cumulative[i-1] + distance(points[i-1], points[i])
	}
	total := cumulative[len(cumulative)-1]
	if total == 0 {
		return repeat(points[0], n)
	}

	out := make([]keylayout.Point, n)
	step := total / float64(n-1)
	seg := 1
	for i := 0; i < n; i++ {
		target := step * float64(i)
		if i == n-1 {
			out[i] = points[len(points)-1]
			continue
		}
		for seg < len(cumulative)-1 && cumulative[seg] < target {
			seg++
		}
		segStart, segEnd := cumulative[seg-1], cumulative[seg]
		t := 0.0
		if segEnd > segStart {
			t = (target - segStart) / (segEnd - segStart)
		}
		out[i] = lerp(points[seg-1], points[seg], t)
	}
	return out
}

func distance(a, b keylayout.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

func lerp(a, b keylayout.Point, t float64) keylayout.Point {
	return keylayout.Point{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

func repeat(p keylayout.Point, n int) []keylayout.Point {
	out := make([]keylayout.Point, n)
	for i := range out {
		out[i] = p
	}
	return out
}
