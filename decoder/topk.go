package decoder

import (
	"math"

	"github.com/Zubayear/ryushin/priorityqueue"
)

// GeometricTopN bounds how many geometric candidates topK keeps while
// scanning the pre-filtered template set; only these survive to the
// language-model rerank stage.
const GeometricTopN = 50

// geometricCandidate is one template's raw DTW distance before any
// rerank against a language model.
type geometricCandidate struct {
	WordID   int32
	Word     string
	Distance float64
}

// topK is a bounded max-heap over geometricCandidate keyed by Distance:
// the root is always the worst (largest-distance) candidate currently
// kept, so once the heap is full its Peek value is a sound pruning
// threshold for bandedDTW's early abandonment — any new candidate whose
// distance cannot beat the current worst is not worth finishing.
type topK struct {
	heap *priorityqueue.BinaryHeap[geometricCandidate]
	cap  int
}

func newTopK(cap int) *topK {
	return &topK{
		heap: priorityqueue.NewBinaryHeapWithComparator(func(a, b geometricCandidate) bool {
			return a.Distance > b.Distance
		}),
		cap: cap,
	}
}

// threshold returns the current prune threshold: +Inf until the heap
// reaches capacity (nothing has been pruned yet, so a pruning comparison
// should never reject a candidate), then the worst kept distance. Once
// full, it only ever tightens (moves down) as better candidates evict
// the current worst, so it is monotonically non-increasing across one
// decode.
func (t *topK) threshold() float64 {
	if t.heap.Size() < t.cap {
		return math.Inf(1)
	}
	worst, err := t.heap.Peek()
	if err != nil {
		return math.Inf(1)
	}
	return worst.Distance
}

// offer inserts c if the heap has room, or if c beats the current worst
// kept candidate, evicting that worst candidate in its place.
func (t *topK) offer(c geometricCandidate) {
	if t.heap.Size() < t.cap {
		t.heap.Add(c)
		return
	}
	worst, err := t.heap.Peek()
	if err != nil || c.Distance >= worst.Distance {
		return
	}
	_, _ = t.heap.Poll()
	t.heap.Add(c)
}

// sorted returns the kept candidates in ascending distance order (best
// first).
func (t *topK) sorted() []geometricCandidate {
	descending := t.heap.Sort() // comparator ranks larger distance first
	out := make([]geometricCandidate, len(descending))
	for i, c := range descending {
		out[len(out)-1-i] = c
	}
	return out
}
