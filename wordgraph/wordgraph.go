// Package wordgraph implements the minimal acyclic word automaton (DAWG)
// that backs the keyboard's dictionary: membership, prefix enumeration and
// word-id lookup over a compact, position-independent node/edge layout.
//
// A Graph is built once — either offline by package graphbuilder or at
// first launch — and is read-only for the rest of the process lifetime.
// Nodes reference each other exclusively by integer index into the node
// array, never by pointer, so a Graph loaded from a memory-mapped file
// needs no pointer-fixup pass.
package wordgraph

import (
	"errors"
	"sort"
	"strings"
)

// ErrUnmapped is not returned by Graph, graphbuilder or template;
// template reports a character with no key as keylayout.ErrNoKey.
var ErrUnmapped = errors.New("wordgraph: character has no key mapping")

// Edge is one outgoing transition from a Node: matching Label advances to
// the node at index Target in the owning Graph's Nodes slice.
type Edge struct {
	Label  rune
	Target int32
}

// Node is a single state of the automaton. Edges is sorted strictly
// ascending by Label so lookups can binary search it. WordID is -1 unless
// Terminal is true.
type Node struct {
	Terminal bool
	WordID   int32
	Edges    []Edge
}

// Graph is a minimal acyclic word automaton: Nodes[0] is the root, and
// Words[i] is the original string whose terminal node carries WordID i.
type Graph struct {
	Nodes []Node
	Words []string
}

// edgeTarget returns the child index of the edge labelled c on Nodes[n],
// using binary search since Edges is kept sorted ascending by Label.
func (g *Graph) edgeTarget(n int32, c rune) (int32, bool) {
	edges := g.Nodes[n].Edges
	i := sort.Search(len(edges), func(i int) bool { return edges[i].Label >= c })
	if i < len(edges) && edges[i].Label == c {
		return edges[i].Target, true
	}
	return 0, false
}

// walk follows word (case-folded) from the root, returning the final node
// index and whether every character had a matching edge.
func (g *Graph) walk(word string) (int32, bool) {
	cur := int32(0)
	for _, c := range strings.ToLower(word) {
		next, ok := g.edgeTarget(cur, c)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// Contains reports whether word is a member of the dictionary.
func (g *Graph) Contains(word string) bool {
	if len(g.Nodes) == 0 {
		return false
	}
	n, ok := g.walk(word)
	return ok && g.Nodes[n].Terminal
}

// WordID returns the stored word id for word and true, or (0, false) if
// word is not a member of the dictionary.
func (g *Graph) WordID(word string) (int32, bool) {
	if len(g.Nodes) == 0 {
		return 0, false
	}
	n, ok := g.walk(word)
	if !ok || !g.Nodes[n].Terminal {
		return 0, false
	}
	return g.Nodes[n].WordID, true
}

// AllWords returns the word array indexed by word id. Callers must treat
// it as read-only.
func (g *Graph) AllWords() []string {
	return g.Words
}

// PrefixSearch walks to the node reached by prefix, then depth-first
// enumerates terminal descendants in sorted-edge order, stopping once
// limit results have been emitted. It returns nil if prefix has no path
// in the graph. limit <= 0 means unlimited.
func (g *Graph) PrefixSearch(prefix string, limit int) []string {
	if len(g.Nodes) == 0 {
		return nil
	}
	start, ok := g.walk(prefix)
	if !ok {
		return nil
	}
	var out []string
	var visit func(n int32, suffix []rune) bool // returns true to keep going
	visit = func(n int32, suffix []rune) bool {
		node := &g.Nodes[n]
		if node.Terminal {
			out = append(out, prefix+string(suffix))
			if limit > 0 && len(out) >= limit {
				return false
			}
		}
		for _, e := range node.Edges {
			if !visit(e.Target, append(suffix, e.Label)) {
				return false
			}
		}
		return true
	}
	visit(start, nil)
	return out
}
