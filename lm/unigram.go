package lm

import (
	"github.com/kho/fslm"
)

// Unigram is a Scorer backed by per-word log-frequencies, independent of
// context. Weights are stored and looked up through an fslm.Vocab/WordId
// pair rather than a plain map[string]float32, the same string-interning
// layer fslm's own n-gram models use to keep repeated word lookups off
// the string-hashing path.
type Unigram struct {
	vocab   *fslm.Vocab
	weights map[fslm.WordId]fslm.Weight
	min     float32
	max     float32
}

// NewUnigram builds a Unigram from word -> log-frequency entries. Words
// absent from entries score 0 (least plausible) rather than panicking,
// since a swipe decoder will routinely consider candidates outside
// whatever corpus the weights were estimated from.
func NewUnigram(entries map[string]fslm.Weight) *Unigram {
	vocab := fslm.NewVocab("<unk>", "<s>", "</s>")
	weights := make(map[fslm.WordId]fslm.Weight, len(entries))

	u := &Unigram{vocab: vocab, weights: weights}
	first := true
	for word, w := range entries {
		id := vocab.IdOrAdd(word)
		weights[id] = w
		if first || float32(w) < u.min {
			u.min = float32(w)
		}
		if first || float32(w) > u.max {
			u.max = float32(w)
		}
		first = false
	}
	return u
}

// Score returns word's log-frequency min-max normalized to [0, 1]
// relative to the rest of the loaded vocabulary, or 0 if word was never
// registered. context is ignored: a unigram model has none to use.
func (u *Unigram) Score(word string, context []string) float32 {
	id := u.vocab.IdOf(word)
	w, ok := u.weights[id]
	if !ok {
		return 0
	}
	if u.max == u.min {
		return 0.5
	}
	return (float32(w) - u.min) / (u.max - u.min)
}
