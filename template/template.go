// Package template builds and stores the ideal swipe path for every word
// in the dictionary: the polyline obtained by visiting each of its
// letters' key centers in order, resampled to a fixed number of
// equally-spaced points so that two templates of arbitrary word length
// can be compared point-for-point by the decoder's banded DTW.
package template

import (
	"errors"
	"fmt"

	"github.com/rutmehta/swipecore/keylayout"
)

// Resolution is the fixed number of points every stored template and
// every captured gesture is resampled to before comparison.
const Resolution = 64

// ErrTooShort is returned by Generate when a word's key path collapses
// to fewer than two distinct points (e.g. a single repeated letter),
// leaving no path to compare against.
var ErrTooShort = errors.New("template: word path has fewer than two distinct key positions")

// Template is one word's ideal swipe path, resampled to Resolution
// equally spaced points.
type Template struct {
	Word   string
	WordID int32
	Points []keylayout.Point
}

// Generate builds the Resolution-point template for word by walking its
// letters across layout, collapsing consecutive repeats (typing "pool"
// only visits 'p','o','l' as distinct stops, not 'p','o','o','l"), and
// arc-length resampling the resulting polyline.
func Generate(word string, wordID int32, layout keylayout.Layout) (*Template, error) {
	raw := make([]keylayout.Point, 0, len(word))
	for _, c := range word {
		p, ok := layout.Position(c)
		if !ok {
			return nil, fmt.Errorf("template: %w", keylayout.ErrNoKey{Char: c})
		}
		if len(raw) == 0 || raw[len(raw)-1] != p {
			raw = append(raw, p)
		}
	}
	if len(raw) < 2 {
		return nil, ErrTooShort
	}

	return &Template{
		Word:   word,
		WordID: wordID,
		Points: Resample(raw, Resolution),
	}, nil
}
