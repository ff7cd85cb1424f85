// Package keylayout maps dictionary characters to their normalized
// position on a keyboard face, the geometric ground truth that template
// generation and gesture capture both measure distances against.
//
// All coordinates live in the unit square [0,1]x[0,1], independent of
// any actual screen size: a host keyboard scales them to its own bounds
// at render and capture time.
package keylayout

import (
	"fmt"
	"unicode"
)

// Point is a normalized 2-D coordinate in [0,1]x[0,1].
type Point struct {
	X, Y float64
}

const keyWidth = 0.1

// qwertyRows lists each row's keys left to right, alongside the row's
// normalized vertical position and its horizontal offset expressed in
// key-widths, so the stagger between rows falls out of the same formula
// for every row.
var qwertyRows = []struct {
	keys   string
	y      float64
	offset float64
}{
	{"qwertyuiop", 0.17, 0.0},
	{"asdfghjkl", 0.50, 0.5},
	{"zxcvbnm", 0.83, 1.5},
}

// Layout maps a character to its key position. Implementations must be
// safe for concurrent use, which a pure lookup table trivially is.
type Layout interface {
	// Position returns the normalized coordinate of c's key and true, or
	// (Point{}, false) if c has no key on this layout.
	Position(c rune) (Point, bool)
}

// qwerty is the default Layout, built once at package init from
// qwertyRows.
type qwerty struct {
	positions map[rune]Point
}

// Default is the standard three-row QWERTY layout built from qwertyRows:
// row y-coordinates 0.17/0.50/0.83, row offsets
// 0/0.5/1.5 key-widths, keys 0.1 wide.
var Default Layout = newQwerty()

func newQwerty() *qwerty {
	positions := make(map[rune]Point)
	for _, row := range qwertyRows {
		for i, c := range row.keys {
			x := (row.offset + float64(i) + 0.5) * keyWidth
			positions[c] = Point{X: x, Y: row.y}
		}
	}
	return &qwerty{positions: positions}
}

func (q *qwerty) Position(c rune) (Point, bool) {
	p, ok := q.positions[unicode.ToLower(c)]
	return p, ok
}

// ErrNoKey reports that a character has no position on a Layout.
type ErrNoKey struct {
	Char rune
}

func (e ErrNoKey) Error() string {
	return fmt.Sprintf("keylayout: %q has no key mapping", e.Char)
}
