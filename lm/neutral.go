package lm

// Neutral is a Scorer that rates every word 0.5 regardless of context,
// for use when no frequency data is available: it leaves reranking to
// the geometric score alone without biasing it in either direction.
type Neutral struct{}

func (Neutral) Score(word string, context []string) float32 {
	return 0.5
}
