// Package decoder turns a resampled swipe path into a ranked list of
// candidate words: an endpoint pre-filter narrows the dictionary down to
// plausible candidates, banded DTW with early abandonment scores each
// one geometrically, and a language-model rerank blends that geometric
// score with word plausibility before the final top-N cut.
package decoder

import (
	"math"
	"sort"

	"github.com/rutmehta/swipecore/keylayout"
	"github.com/rutmehta/swipecore/lm"
	"github.com/rutmehta/swipecore/template"
)

// EndpointRadius is how close, in normalized key-layout units, a
// gesture's first/last point must land to a letter's key for that
// letter to be considered a plausible start/end of the swiped word.
const EndpointRadius = 0.12

// FinalTopN is how many reranked candidates Decode returns.
const FinalTopN = 3

// Candidate is one ranked decode result.
type Candidate struct {
	Word      string
	WordID    int32
	Geometric float32 // in [0, 1], 1 is a perfect geometric match
	Language  float32 // in [0, 1], the Scorer's plausibility rating
	Combined  float32 // 0.6*Geometric + 0.4*Language, what Decode sorts by
}

// Engine decodes swipe gestures against a compiled template.Store using
// layout to find endpoint-adjacent letters and scorer to rerank
// geometric matches by language plausibility.
type Engine struct {
	store  *template.Store
	layout keylayout.Layout
	scorer lm.Scorer
}

// NewEngine constructs an Engine. scorer may be lm.Neutral{} when no
// frequency data is available.
func NewEngine(store *template.Store, layout keylayout.Layout, scorer lm.Scorer) *Engine {
	return &Engine{store: store, layout: layout, scorer: scorer}
}

// Decode scores the dictionary against a swiped path (already in
// normalized [0,1]x[0,1] key-layout coordinates, e.g. from
// gesture.Sample.Point) and returns up to FinalTopN ranked candidates,
// best first. It returns nil if the path has fewer than two points, if
// no letter lies within EndpointRadius of either endpoint, or if the
// endpoint pre-filter matches no template.
func (e *Engine) Decode(points []keylayout.Point, context []string) []Candidate {
	if len(points) < 2 {
		return nil
	}
	path := template.Resample(points, template.Resolution)

	startLetters := e.nearbyLetters(points[0])
	endLetters := e.nearbyLetters(points[len(points)-1])
	if len(startLetters) == 0 || len(endLetters) == 0 {
		return nil
	}

	indices := e.prefilter(startLetters, endLetters)
	if len(indices) == 0 {
		return nil
	}

	geometric := e.rankGeometric(path, indices)
	if len(geometric) == 0 {
		return nil
	}

	return e.rerank(geometric, context)
}

// nearbyLetters returns every a-z letter whose key lies within
// EndpointRadius of p.
func (e *Engine) nearbyLetters(p keylayout.Point) []rune {
	var out []rune
	for c := rune('a'); c <= 'z'; c++ {
		kp, ok := e.layout.Position(c)
		if !ok {
			continue
		}
		if math.Hypot(kp.X-p.X, kp.Y-p.Y) <= EndpointRadius {
			out = append(out, c)
		}
	}
	return out
}

// prefilter returns the deduplicated set of template indices whose word
// starts with one of startLetters and ends with one of endLetters.
func (e *Engine) prefilter(startLetters, endLetters []rune) []int32 {
	seen := make(map[int32]bool)
	var out []int32
	for _, s := range startLetters {
		for _, f := range endLetters {
			for _, idx := range e.store.Index.Lookup(s, f) {
				if !seen[idx] {
					seen[idx] = true
					out = append(out, idx)
				}
			}
		}
	}
	return out
}

// rankGeometric runs banded DTW between path and every pre-filtered
// template, keeping the GeometricTopN closest via a bounded max-heap
// whose Peek value feeds bandedDTW's early-abandonment threshold.
func (e *Engine) rankGeometric(path []keylayout.Point, indices []int32) []geometricCandidate {
	tk := newTopK(GeometricTopN)
	for _, idx := range indices {
		tpl := e.store.Templates[idx]

		d := bandedDTW(path, tpl.Points, DefaultBand, true, tk.threshold())
		if math.IsInf(d, 1) {
			continue // pruned: provably worse than the current worst kept candidate
		}
		tk.offer(geometricCandidate{WordID: tpl.WordID, Word: tpl.Word, Distance: d})
	}
	return tk.sorted()
}

// rerank converts DTW distance into a [0,1] geometric score relative to
// the worst (largest-distance) candidate kept, so the closest match
// scores near 1 and the weakest kept match scores near 0, blends it
// with the language model's score, and returns the top FinalTopN by
// combined score.
func (e *Engine) rerank(geometric []geometricCandidate, context []string) []Candidate {
	worst := geometric[len(geometric)-1].Distance
	normalizer := 1.2 * worst

	candidates := make([]Candidate, len(geometric))
	for i, g := range geometric {
		var geoScore float32
		switch {
		case normalizer <= 0:
			if g.Distance == 0 {
				geoScore = 1
			}
		default:
			geoScore = float32(math.Max(0, 1-g.Distance/normalizer))
		}
		langScore := e.scorer.Score(g.Word, context)
		candidates[i] = Candidate{
			Word:      g.Word,
			WordID:    g.WordID,
			Geometric: geoScore,
			Language:  langScore,
			Combined:  0.6*geoScore + 0.4*langScore,
		}
	}

	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].Combined != candidates[j].Combined {
			return candidates[i].Combined > candidates[j].Combined
		}
		if candidates[i].WordID != candidates[j].WordID {
			return candidates[i].WordID < candidates[j].WordID
		}
		return candidates[i].Word < candidates[j].Word
	})

	if len(candidates) > FinalTopN {
		candidates = candidates[:FinalTopN]
	}
	return candidates
}
