package template

import (
	"bufio"
	"encoding/gob"
	"errors"
	"fmt"
	"io"
)

// magic identifies a compiled template store, so Load can reject a
// file that isn't one before gob ever sees it.
var magic = [4]byte{'S', 'W', 'T', 'P'}

// ErrBadMagic is returned by Load when the stream doesn't start with the
// expected magic bytes.
var ErrBadMagic = errors.New("template: not a template store (bad magic)")

// Store is the full set of compiled templates plus the endpoint index
// built over them, the unit cmd/buildlexicon writes and the decoder
// loads at startup.
type Store struct {
	Templates []Template
	Index     *Index
}

// NewStore builds a Store from templates, computing its Index.
func NewStore(templates []Template) *Store {
	return &Store{Templates: templates, Index: BuildIndex(templates)}
}

// Save writes s to w as a 4-byte magic header followed by a gob-encoded
// template slice. There is no raw, fixed-stride payload worth keeping
// outside of gob here, since every template is already a small
// variable-length point slice.
func (s *Store) Save(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if _, err := bw.Write(magic[:]); err != nil {
		return fmt.Errorf("template: write magic: %w", err)
	}
	if err := gob.NewEncoder(bw).Encode(s.Templates); err != nil {
		return fmt.Errorf("template: gob-encode templates: %w", err)
	}
	return bw.Flush()
}

// Load reads a Store from r in the format Save writes, rebuilding the
// endpoint Index rather than persisting it (it is a cheap, pure function
// of Templates, so storing it would just be a second source of truth to
// keep in sync).
func Load(r io.Reader) (*Store, error) {
	br := bufio.NewReader(r)

	var got [4]byte
	if _, err := io.ReadFull(br, got[:]); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadMagic, err)
	}
	if got != magic {
		return nil, ErrBadMagic
	}

	var templates []Template
	if err := gob.NewDecoder(br).Decode(&templates); err != nil {
		return nil, fmt.Errorf("template: gob-decode templates: %w", err)
	}

	return NewStore(templates), nil
}
