package graphbuilder_test

import (
	"bytes"
	"sort"
	"testing"

	"github.com/rutmehta/swipecore/graphbuilder"
	"github.com/rutmehta/swipecore/wordgraph"
)

func TestBuildContainsAllWords(t *testing.T) {
	words := []string{"an", "and", "ant", "any"}
	g, err := graphbuilder.Build(words)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	for _, w := range words {
		if !g.Contains(w) {
			t.Errorf("built graph missing word %q", w)
		}
	}
	for _, w := range []string{"a", "ants", "xyz"} {
		if g.Contains(w) {
			t.Errorf("built graph unexpectedly contains %q", w)
		}
	}
}

func TestBuildMinimizesSharedPrefixes(t *testing.T) {
	// "ant" and "anthem" and "anti" share the prefix "ant"; a minimal
	// DAWG (like a trie) stores that prefix once, so the node count
	// should be well under the sum of the three words' lengths.
	words := []string{"ant", "anthem", "anti"}
	g, err := graphbuilder.Build(words)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	const namePrefixOnlyUpperBound = 1 + 3 + 3 + 2 // root + "ant" + "hem" + "i"
	if len(g.Nodes) > namePrefixOnlyUpperBound {
		t.Errorf("Build did not share the common prefix: got %d nodes, want <= %d", len(g.Nodes), namePrefixOnlyUpperBound)
	}
	for _, w := range words {
		if !g.Contains(w) {
			t.Errorf("built graph missing word %q", w)
		}
	}
}

func TestBuildKeepsDistinctWordsWithSharedSuffixSeparate(t *testing.T) {
	// "cap" and "tap" share the suffix "ap", but each terminal node
	// carries a word id unique to its own word, so the two leaf chains
	// must stay distinct even though they are structurally identical.
	g, err := graphbuilder.Build([]string{"cap", "tap"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	capID, ok := g.WordID("cap")
	if !ok {
		t.Fatal("WordID(\"cap\") not found")
	}
	tapID, ok := g.WordID("tap")
	if !ok {
		t.Fatal("WordID(\"tap\") not found")
	}
	if capID == tapID {
		t.Fatalf("\"cap\" and \"tap\" resolved to the same word id %d", capID)
	}
	if g.Words[capID] != "cap" || g.Words[tapID] != "tap" {
		t.Fatalf("word id table corrupted: Words[%d]=%q, Words[%d]=%q", capID, g.Words[capID], tapID, g.Words[tapID])
	}
}

func TestBuildRejectsUnsortedInput(t *testing.T) {
	_, err := graphbuilder.Build([]string{"banana", "apple"})
	if err != graphbuilder.ErrUnsorted {
		t.Fatalf("Build on unsorted input = %v, want %v", err, graphbuilder.ErrUnsorted)
	}
}

func TestBuildToleratesConsecutiveDuplicates(t *testing.T) {
	g, err := graphbuilder.Build([]string{"cat", "cat", "dog"})
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(g.AllWords()) != 2 {
		t.Fatalf("AllWords() = %v, want exactly 2 entries", g.AllWords())
	}
	if !g.Contains("cat") || !g.Contains("dog") {
		t.Fatalf("built graph missing a word after deduplication")
	}
}

func TestBuildEmptyInput(t *testing.T) {
	g, err := graphbuilder.Build(nil)
	if err != nil {
		t.Fatalf("Build(nil): %v", err)
	}
	if len(g.Nodes) != 1 {
		t.Fatalf("Build(nil) node count = %d, want 1 (root only)", len(g.Nodes))
	}
	if g.Contains("anything") {
		t.Fatal("empty graph should contain nothing")
	}
}

func TestBuildRoundTripsThroughSerialization(t *testing.T) {
	words := []string{"an", "and", "ant", "any", "bat", "cat", "cats"}
	g, err := graphbuilder.Build(words)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	var buf bytes.Buffer
	if err := g.Save(&buf); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := wordgraph.Load(&buf)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	for _, w := range words {
		if !loaded.Contains(w) {
			t.Errorf("round-tripped graph missing word %q", w)
		}
	}
}

func TestBuildSortedLargerSample(t *testing.T) {
	words := []string{"ant", "anthem", "anti", "bear", "bearing", "bears"}
	sort.Strings(words)
	g, err := graphbuilder.Build(words)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	got := g.PrefixSearch("ant", 0)
	want := []string{"ant", "anthem", "anti"}
	if len(got) != len(want) {
		t.Fatalf("PrefixSearch(\"ant\") = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("PrefixSearch(\"ant\") = %v, want %v", got, want)
		}
	}
}
