package decoder

import (
	"math"
	"testing"
)

func TestTopKThresholdIsInfiniteUntilFull(t *testing.T) {
	tk := newTopK(2)
	if got := tk.threshold(); !math.IsInf(got, 1) {
		t.Fatalf("threshold() on empty heap = %v, want +Inf", got)
	}
	tk.offer(geometricCandidate{Word: "a", Distance: 5})
	if got := tk.threshold(); !math.IsInf(got, 1) {
		t.Fatalf("threshold() below capacity = %v, want +Inf", got)
	}
}

func TestTopKKeepsSmallestDistances(t *testing.T) {
	tk := newTopK(2)
	tk.offer(geometricCandidate{Word: "far", Distance: 9})
	tk.offer(geometricCandidate{Word: "mid", Distance: 5})
	tk.offer(geometricCandidate{Word: "near", Distance: 1})

	got := tk.sorted()
	if len(got) != 2 {
		t.Fatalf("len(sorted) = %d, want 2", len(got))
	}
	if got[0].Word != "near" || got[1].Word != "mid" {
		t.Fatalf("sorted = %v, want [near, mid]", got)
	}
}

func TestTopKThresholdIsMonotonicNonIncreasingWithinADecode(t *testing.T) {
	tk := newTopK(2)
	tk.offer(geometricCandidate{Word: "a", Distance: 10})
	tk.offer(geometricCandidate{Word: "b", Distance: 8})
	thresholds := []float64{}

	for _, d := range []float64{6, 9, 2, 7} {
		tk.offer(geometricCandidate{Word: "x", Distance: d})
		thresholds = append(thresholds, tk.threshold())
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] > thresholds[i-1] {
			t.Fatalf("threshold increased: %v -> %v", thresholds[i-1], thresholds[i])
		}
	}
}

func TestTopKOfferWorseThanWorstIsIgnored(t *testing.T) {
	tk := newTopK(1)
	tk.offer(geometricCandidate{Word: "keep", Distance: 1})
	tk.offer(geometricCandidate{Word: "worse", Distance: 100})
	got := tk.sorted()
	if len(got) != 1 || got[0].Word != "keep" {
		t.Fatalf("sorted = %v, want [keep]", got)
	}
}
