package decoder

import (
	"math"

	"github.com/rutmehta/swipecore/keylayout"
)

// DefaultBand is the Sakoe-Chiba band radius used when comparing two
// same-length resampled paths: cell (i, j) is only reachable when
// |i-j| <= band, which keeps the O(n*m) DP down to O(n*band) without
// materially restricting alignments between paths that are already the
// same length.
const DefaultBand = 10

// bandedDTW computes the dynamic-time-warping distance between a and b,
// restricted to a Sakoe-Chiba band of the given radius (widened to cover
// |len(a)-len(b)| so a valid alignment always exists), normalized by
// path length so templates of different resolutions stay comparable.
//
// If squared is true, per-point cost is squared Euclidean distance
// (cheaper, and the ordering of candidates by distance is unchanged
// since sqrt is monotonic) instead of Euclidean distance.
//
// prune is an early-abandonment threshold expressed in the same
// normalized units as the function's return value (total cost divided
// by n+m): if every cell a DP row could reach, once projected back to
// raw cumulative cost, already exceeds prune, the function returns +Inf
// immediately without finishing the remaining rows. Pass +Inf to
// disable pruning.
func bandedDTW(a, b []keylayout.Point, band int, squared bool, prune float64) float64 {
	n, m := len(a), len(b)
	if n == 0 || m == 0 {
		return math.Inf(1)
	}

	w := band
	if d := abs(n - m); d > w {
		w = d
	}

	rawPrune := math.Inf(1)
	if !math.IsInf(prune, 1) {
		rawPrune = prune * float64(n+m)
	}

	prev := make([]float64, m+1)
	curr := make([]float64, m+1)
	for j := range prev {
		prev[j] = math.Inf(1)
	}
	prev[0] = 0

	for i := 1; i <= n; i++ {
		for j := range curr {
			curr[j] = math.Inf(1)
		}
		lo, hi := i-w, i+w
		if lo < 1 {
			lo = 1
		}
		if hi > m {
			hi = m
		}

		rowMin := math.Inf(1)
		for j := lo; j <= hi; j++ {
			cost := cellCost(a[i-1], b[j-1], squared)
			best := prev[j]
			if curr[j-1] < best {
				best = curr[j-1]
			}
			if prev[j-1] < best {
				best = prev[j-1]
			}
			curr[j] = best + cost
			if curr[j] < rowMin {
				rowMin = curr[j]
			}
		}

		if rowMin > rawPrune {
			return math.Inf(1)
		}

		prev, curr = curr, prev
	}

	return prev[m] / float64(n+m)
}

func cellCost(p, q keylayout.Point, squared bool) float64 {
	dx, dy := p.X-q.X, p.Y-q.Y
	sq := dx*dx + dy*dy
	if squared {
		return sq
	}
	return math.Sqrt(sq)
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
