package template

import "unicode"

// endpointKey is the (first letter, last letter) pair a template is
// filed under in an Index, both case-folded to match keylayout.Position.
type endpointKey struct {
	first, last rune
}

// Index groups template positions by their word's first and last
// letter, the same (first-char, last-char) neighborhood the decoder
// pre-filters candidates against before running DTW on any of them.
type Index struct {
	byEndpoints map[endpointKey][]int32
}

// BuildIndex indexes templates by their Word's first and last rune.
func BuildIndex(templates []Template) *Index {
	idx := &Index{byEndpoints: make(map[endpointKey][]int32)}
	for i, t := range templates {
		key := endpoints(t.Word)
		idx.byEndpoints[key] = append(idx.byEndpoints[key], int32(i))
	}
	return idx
}

// Lookup returns the template indices whose word starts with first and
// ends with last (case-insensitive), or nil if none match.
func (idx *Index) Lookup(first, last rune) []int32 {
	return idx.byEndpoints[endpointKey{first: unicode.ToLower(first), last: unicode.ToLower(last)}]
}

func endpoints(word string) endpointKey {
	r := []rune(word)
	return endpointKey{first: unicode.ToLower(r[0]), last: unicode.ToLower(r[len(r)-1])}
}
