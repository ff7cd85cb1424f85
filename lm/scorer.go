// Package lm supplies the language-model half of swipe decoding: a
// pluggable word-plausibility score the decoder blends with each
// candidate's geometric (DTW) score during reranking.
package lm

// Scorer rates how plausible word is given the preceding context,
// returning a value in [0, 1] where higher means more plausible.
// context is the already-committed words before the one being scored,
// oldest first; implementations that ignore context (a unigram model)
// are free to do so.
type Scorer interface {
	Score(word string, context []string) float32
}
