// Package graphbuilder constructs an acyclic word graph from a
// lexicographically sorted word list via incremental construction: a
// growing tree of build-time nodes, a registry of frozen canonical
// subtrees, and a stack of "unchecked" nodes recording the rightmost
// path from the root to the most recently inserted leaf.
//
// Equivalence is tested bottom-up — a node's children are always already
// canonical by the time the node itself is considered — on (terminal,
// word id, ordered edges→canonical targets). Because every terminal node
// carries its own word id, no two nodes ever compare equal, so nothing is
// merged: the result is the trie of the word list, which shares common
// prefixes but is not a minimal DAWG (equal suffixes are stored once per
// word).
package graphbuilder

import (
	"errors"
	"fmt"
	"sort"

	"github.com/Zubayear/ryushin/stack"
	"github.com/rutmehta/swipecore/wordgraph"
)

// ErrUnsorted is returned by Build when the input word list is not
// lexicographically sorted — sortedness is what lets the freeze step
// merge subtrees as soon as they stop being extended, so an unsorted
// input would silently break minimality instead of failing loudly.
var ErrUnsorted = errors.New("graphbuilder: input word list is not sorted")

// buildEdge is one outgoing transition of a buildNode, still holding a
// live pointer to its target rather than a flattened index.
type buildEdge struct {
	label  rune
	target *buildNode
}

// buildNode is an arena-owned node under construction. Children are
// appended in increasing label order for free, since the input word list
// is sorted; no node ever needs re-sorting.
type buildNode struct {
	terminal bool
	wordID   int32
	children []buildEdge
}

// signature returns a canonical string key for n's right-language-
// determining shape: its terminal flag plus the ordered sequence of
// (label, canonical target identity) pairs. Two distinct buildNodes with
// the same signature have the same right language, because by
// construction every child referenced here is already canonical.
//
// A terminal node's word id is folded into its signature alongside the
// flag. Each word id is unique to one word, so two different words' leaf
// nodes are never merged into one; and since every other node reaches at
// least one such leaf through children that were themselves never
// merged, no two signatures ever coincide and no subtree is shared.
func (n *buildNode) signature() string {
	buf := make([]byte, 0, 8+8*len(n.children))
	if n.terminal {
		buf = append(buf, fmt.Sprintf("T%d", n.wordID)...)
	} else {
		buf = append(buf, 'N')
	}
	for _, e := range n.children {
		buf = append(buf, fmt.Sprintf("|%c>%p", e.label, e.target)...)
	}
	return string(buf)
}

// uncheckedEntry is one frame of the "rightmost path" stack: the edge
// labelled label from parent to child, not yet confirmed canonical.
type uncheckedEntry struct {
	parent *buildNode
	label  rune
	child  *buildNode
}

// builder holds the mutable state of one construction run.
type builder struct {
	root      *buildNode
	unchecked *stack.Stack[uncheckedEntry]
	registry  map[string]*buildNode
	words     []string
	nextID    int32
}

// Build constructs a minimal word graph from words, which must already be
// sorted ascending (case-sensitive byte order); consecutive duplicates
// are tolerated as no-ops. It returns ErrUnsorted instead of silently
// producing a non-minimal or incorrect graph.
func Build(words []string) (*wordgraph.Graph, error) {
	if !sort.StringsAreSorted(words) {
		return nil, ErrUnsorted
	}

	b := &builder{
		root:      &buildNode{},
		unchecked: stack.NewStack[uncheckedEntry](),
		registry:  make(map[string]*buildNode),
	}

	prev := ""
	for _, w := range words {
		if w == prev {
			continue // duplicate: second insert is a no-op
		}
		if err := b.insert(prev, w); err != nil {
			return nil, err
		}
		prev = w
	}
	if err := b.freezeTo(0); err != nil {
		return nil, err
	}

	return b.flatten(), nil
}

// commonPrefixLen returns the length of the longest common prefix of a
// and b, measured in runes.
func commonPrefixLen(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	i := 0
	for i < n && ra[i] == rb[i] {
		i++
	}
	return i
}

// insert adds word w to the tree, given prev was the previously inserted
// word (used only to compute the common-prefix depth to freeze down to).
func (b *builder) insert(prev, w string) error {
	l := commonPrefixLen(prev, w)
	if err := b.freezeTo(l); err != nil {
		return err
	}

	cur := b.root
	if l > 0 {
		top, err := b.unchecked.Peek()
		if err != nil {
			return fmt.Errorf("graphbuilder: unchecked stack shorter than common-prefix depth: %w", err)
		}
		cur = top.child
	}

	suffix := []rune(w)[l:]
	for _, c := range suffix {
		child := &buildNode{}
		cur.children = append(cur.children, buildEdge{label: c, target: child})
		if _, err := b.unchecked.Push(uncheckedEntry{parent: cur, label: c, child: child}); err != nil {
			return fmt.Errorf("graphbuilder: push unchecked entry: %w", err)
		}
		cur = child
	}

	cur.terminal = true
	cur.wordID = b.nextID
	b.nextID++
	b.words = append(b.words, w)
	return nil
}

// freezeTo pops the unchecked stack down to depth, merging each popped
// node into the registry's canonical form (or registering it as the new
// canonical form for its signature) and rewriting its parent's edge to
// point at whichever node turns out to be canonical.
func (b *builder) freezeTo(depth int) error {
	for b.unchecked.Size() > depth {
		entry, err := b.unchecked.Pop()
		if err != nil {
			return fmt.Errorf("graphbuilder: pop unchecked entry: %w", err)
		}
		sig := entry.child.signature()
		if canonical, ok := b.registry[sig]; ok {
			rewriteEdge(entry.parent, entry.label, canonical)
		} else {
			b.registry[sig] = entry.child
		}
	}
	return nil
}

// rewriteEdge repoints parent's edge labelled label at target.
func rewriteEdge(parent *buildNode, label rune, target *buildNode) {
	for i := range parent.children {
		if parent.children[i].label == label {
			parent.children[i].target = target
			return
		}
	}
}

// flatten assigns each distinct reachable buildNode a dense BFS index
// (root → 0) and produces the position-independent wordgraph.Graph.
func (b *builder) flatten() *wordgraph.Graph {
	index := make(map[*buildNode]int32)
	order := []*buildNode{b.root}
	index[b.root] = 0

	for i := 0; i < len(order); i++ {
		for _, e := range order[i].children {
			if _, seen := index[e.target]; !seen {
				index[e.target] = int32(len(order))
				order = append(order, e.target)
			}
		}
	}

	nodes := make([]wordgraph.Node, len(order))
	for i, bn := range order {
		wordID := int32(-1)
		if bn.terminal {
			wordID = bn.wordID
		}
		edges := make([]wordgraph.Edge, len(bn.children))
		for j, e := range bn.children {
			edges[j] = wordgraph.Edge{Label: e.label, Target: index[e.target]}
		}
		nodes[i] = wordgraph.Node{Terminal: bn.terminal, WordID: wordID, Edges: edges}
	}

	words := make([]string, len(b.words))
	for _, bn := range order {
		if bn.terminal {
			words[bn.wordID] = b.words[bn.wordID]
		}
	}

	return &wordgraph.Graph{Nodes: nodes, Words: words}
}
