package wordgraph

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	"github.com/edsrzf/mmap-go"
)

// EnvResourcePath, when set, overrides the compiled-lexicon path a
// caller would otherwise hardcode or derive from the binary's location.
const EnvResourcePath = "SWIPECORE_LEXICON_PATH"

// ErrCorrupt is returned by Load/LoadMmap when the stream fails any of the
// structural validations Save's format requires: a node count mismatch,
// an out-of-range edge target, a terminal node's word id out of range,
// or a non-terminal node carrying a word id.
var ErrCorrupt = errors.New("wordgraph: corrupt resource")

// Save writes g to w in a little-endian binary format: a u32 node
// count, a u32 word count, one record per node in the order they
// already appear in g.Nodes (callers that built g via graphbuilder get
// BFS order for free), then one length-prefixed UTF-8
// word per entry of g.Words.
func (g *Graph) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(g.Nodes))); err != nil {
		return fmt.Errorf("wordgraph: write node count: %w", err)
	}
	if err := binary.Write(bw, binary.LittleEndian, uint32(len(g.Words))); err != nil {
		return fmt.Errorf("wordgraph: write word count: %w", err)
	}
	for _, n := range g.Nodes {
		var terminal uint8
		if n.Terminal {
			terminal = 1
		}
		if err := bw.WriteByte(terminal); err != nil {
			return fmt.Errorf("wordgraph: write terminal flag: %w", err)
		}
		wordID := int32(-1)
		if n.Terminal {
			wordID = n.WordID
		}
		if err := binary.Write(bw, binary.LittleEndian, wordID); err != nil {
			return fmt.Errorf("wordgraph: write word id: %w", err)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(n.Edges))); err != nil {
			return fmt.Errorf("wordgraph: write edge count: %w", err)
		}
		for _, e := range n.Edges {
			if e.Label > 0xFFFF {
				return fmt.Errorf("wordgraph: label %q outside BMP baseline format", e.Label)
			}
			if err := binary.Write(bw, binary.LittleEndian, uint16(e.Label)); err != nil {
				return fmt.Errorf("wordgraph: write edge label: %w", err)
			}
			if err := binary.Write(bw, binary.LittleEndian, e.Target); err != nil {
				return fmt.Errorf("wordgraph: write edge target: %w", err)
			}
		}
	}
	for _, word := range g.Words {
		b := []byte(word)
		if len(b) > 0xFFFF {
			return fmt.Errorf("wordgraph: word %q too long for u16 length prefix", word)
		}
		if err := binary.Write(bw, binary.LittleEndian, uint16(len(b))); err != nil {
			return fmt.Errorf("wordgraph: write word length: %w", err)
		}
		if _, err := bw.Write(b); err != nil {
			return fmt.Errorf("wordgraph: write word bytes: %w", err)
		}
	}
	return bw.Flush()
}

// Load reads and validates a Graph from r in the format Save writes.
func Load(r io.Reader) (*Graph, error) {
	br := bufio.NewReader(r)

	var nodeCount, wordCount uint32
	if err := binary.Read(br, binary.LittleEndian, &nodeCount); err != nil {
		return nil, fmt.Errorf("%w: reading node count: %v", ErrCorrupt, err)
	}
	if err := binary.Read(br, binary.LittleEndian, &wordCount); err != nil {
		return nil, fmt.Errorf("%w: reading word count: %v", ErrCorrupt, err)
	}

	nodes := make([]Node, nodeCount)
	for i := range nodes {
		var terminal uint8
		if err := binary.Read(br, binary.LittleEndian, &terminal); err != nil {
			return nil, fmt.Errorf("%w: reading terminal flag of node %d: %v", ErrCorrupt, i, err)
		}
		var wordID int32
		if err := binary.Read(br, binary.LittleEndian, &wordID); err != nil {
			return nil, fmt.Errorf("%w: reading word id of node %d: %v", ErrCorrupt, i, err)
		}
		isTerminal := terminal != 0
		if isTerminal && (wordID < 0 || uint32(wordID) >= wordCount) {
			return nil, fmt.Errorf("%w: node %d terminal with out-of-range word id %d", ErrCorrupt, i, wordID)
		}
		if !isTerminal && wordID != -1 {
			return nil, fmt.Errorf("%w: node %d is non-terminal but word id is %d, want -1", ErrCorrupt, i, wordID)
		}

		var edgeCount uint16
		if err := binary.Read(br, binary.LittleEndian, &edgeCount); err != nil {
			return nil, fmt.Errorf("%w: reading edge count of node %d: %v", ErrCorrupt, i, err)
		}
		edges := make([]Edge, edgeCount)
		for j := range edges {
			var label uint16
			if err := binary.Read(br, binary.LittleEndian, &label); err != nil {
				return nil, fmt.Errorf("%w: reading edge %d/%d label of node %d: %v", ErrCorrupt, j, edgeCount, i, err)
			}
			var target int32
			if err := binary.Read(br, binary.LittleEndian, &target); err != nil {
				return nil, fmt.Errorf("%w: reading edge %d/%d target of node %d: %v", ErrCorrupt, j, edgeCount, i, err)
			}
			if target < 0 || uint32(target) >= nodeCount {
				return nil, fmt.Errorf("%w: node %d edge %d targets out-of-range node %d", ErrCorrupt, i, j, target)
			}
			edges[j] = Edge{Label: rune(label), Target: target}
		}
		nodes[i] = Node{Terminal: isTerminal, WordID: wordID, Edges: edges}
	}

	words := make([]string, wordCount)
	for i := range words {
		var length uint16
		if err := binary.Read(br, binary.LittleEndian, &length); err != nil {
			return nil, fmt.Errorf("%w: reading length of word %d: %v", ErrCorrupt, i, err)
		}
		buf := make([]byte, length)
		if _, err := io.ReadFull(br, buf); err != nil {
			return nil, fmt.Errorf("%w: reading bytes of word %d: %v", ErrCorrupt, i, err)
		}
		if !utf8.Valid(buf) {
			return nil, fmt.Errorf("%w: word %d is not valid UTF-8", ErrCorrupt, i)
		}
		words[i] = string(buf)
	}

	return &Graph{Nodes: nodes, Words: words}, nil
}

// mmapGraph keeps the backing mmap.MMap alive alongside the Graph it was
// decoded from; Close unmaps it. Decoding still parses the mapped bytes
// sequentially and copies each node/edge/word into the returned Graph
// (the on-disk records are variable length once edge counts differ, so
// there is no fixed stride to index into and cast in place); the mmap
// only spares the separate read-the-whole-file-into-a-buffer step
// before decoding starts.
type mmapGraph struct {
	Graph
	region mmap.MMap
}

// Close unmaps the backing file. The Graph holds its own copies of every
// node, edge and word, so it stays usable after Close.
func (m *mmapGraph) Close() error {
	return m.region.Unmap()
}

// LoadMmap memory-maps path read-only and decodes a Graph directly from
// the mapped bytes, so the OS supplies pages on demand instead of a
// single upfront read of the whole file; Load still copies each
// decoded node, edge, and word into the Graph it returns. The returned
// Graph must be released with Close when the caller is done with it.
func LoadMmap(path string) (*mmapGraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("wordgraph: open %s: %w", path, err)
	}
	defer f.Close()

	region, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		return nil, fmt.Errorf("wordgraph: mmap %s: %w", path, err)
	}

	g, err := Load(bytes.NewReader(region))
	if err != nil {
		_ = region.Unmap()
		return nil, err
	}

	return &mmapGraph{Graph: *g, region: region}, nil
}

// ResourcePath resolves the compiled lexicon path, preferring
// EnvResourcePath when set and falling back to fallback otherwise.
func ResourcePath(fallback string) string {
	if p := os.Getenv(EnvResourcePath); p != "" {
		return p
	}
	return fallback
}
