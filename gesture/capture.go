// Package gesture turns a raw stream of touch events into the clean,
// normalized point-and-time sample sequence the decoder expects: an
// explicit idle/capturing state machine debounces a touch surface's
// native sampling rate and rejects jitter smaller than MinSampleDistance.
package gesture

import (
	"errors"
	"math"

	"github.com/rutmehta/swipecore/keylayout"
)

// SampleInterval is the nominal touch-sampling period this package
// debounces against (60 Hz).
const SampleInterval = 1.0 / 60.0

// debounceGate is the minimum elapsed time, as a fraction of
// SampleInterval, required before a Continue sample is accepted. Set
// below 1.0 so a slightly early frame (a touch driver rarely fires at
// exactly 60 Hz) is not dropped outright.
const debounceGate = 0.8 * SampleInterval

// MinSampleDistance is the minimum normalized-space distance a new point
// must be from the last accepted sample to itself be accepted; it
// filters out the jitter of a finger that is effectively stationary.
const MinSampleDistance = 0.005

// ErrNotCapturing is returned by Continue and End when called without a
// matching Begin.
var ErrNotCapturing = errors.New("gesture: Continue/End called while idle")

// Rect is the keyboard's bounding rectangle in whatever coordinate space
// raw touch events arrive in (typically device pixels).
type Rect struct {
	MinX, MinY, MaxX, MaxY float64
}

func (r Rect) normalize(x, y float64) keylayout.Point {
	nx := clamp01((x - r.MinX) / (r.MaxX - r.MinX))
	ny := clamp01((y - r.MinY) / (r.MaxY - r.MinY))
	return keylayout.Point{X: nx, Y: ny}
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

// Sample is one accepted point of a gesture, in normalized [0,1]x[0,1]
// coordinates, with its capture time in seconds.
type Sample struct {
	Point keylayout.Point
	Time  float64
}

type state int

const (
	idle state = iota
	capturing
)

// Capture is a single capture session's state machine: feed it Begin,
// zero or more Continue calls, and a final End.
type Capture struct {
	bounds         Rect
	state          state
	samples        []Sample
	lastSampleTime float64
}

// NewCapture returns an idle Capture bound to the given keyboard
// rectangle.
func NewCapture(bounds Rect) *Capture {
	return &Capture{bounds: bounds, state: idle}
}

// Begin starts a new gesture at (x, y) and time t (seconds), discarding
// any previous session's samples. The first point is always accepted.
func (c *Capture) Begin(x, y, t float64) {
	c.state = capturing
	c.samples = []Sample{{Point: c.bounds.normalize(x, y), Time: t}}
	c.lastSampleTime = t
}

// Continue offers a new touch-moved point. It is silently ignored
// (returning nil) if it arrives before debounceGate has elapsed since
// the last accepted sample, or if it is closer than MinSampleDistance to
// the last accepted point; otherwise it is appended to the session.
func (c *Capture) Continue(x, y, t float64) error {
	if c.state != capturing {
		return ErrNotCapturing
	}
	if t-c.lastSampleTime < debounceGate {
		return nil
	}
	p := c.bounds.normalize(x, y)
	last := c.samples[len(c.samples)-1].Point
	if math.Hypot(p.X-last.X, p.Y-last.Y) < MinSampleDistance {
		return nil
	}
	c.samples = append(c.samples, Sample{Point: p, Time: t})
	c.lastSampleTime = t
	return nil
}

// End finalizes the gesture with the touch-up point, always appending it
// regardless of the debounce/distance gates (the final key matters more
// than an evenly sampled tail), and returns the full accepted sample
// sequence. The Capture returns to idle.
func (c *Capture) End(x, y, t float64) ([]Sample, error) {
	if c.state != capturing {
		return nil, ErrNotCapturing
	}
	p := c.bounds.normalize(x, y)
	c.samples = append(c.samples, Sample{Point: p, Time: t})
	out := c.samples
	c.state = idle
	c.samples = nil
	return out, nil
}

// Capturing reports whether a gesture is currently in progress.
func (c *Capture) Capturing() bool {
	return c.state == capturing
}
