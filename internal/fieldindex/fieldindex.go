// Package fieldindex dispatches a decoded record or tagged-union name (the
// Named-mode key) to its declared position in O(1), and tracks which
// positions have already been seen so a duplicate key can be resolved
// last-write-wins. Indexed-mode integer keys are not looked up here; package
// codec bounds-checks them against Index.Len directly.
//
// It reuses the same hash-then-verify shape as a metric-name collision
// tracker would, but applied to a different problem: resolving a decoded
// field name to its schema position, falling back to an exact string compare
// on hash collision instead of flagging one.
package fieldindex

import "github.com/brief-format/brief/internal/hash"

// Index maps declared field or variant names to their declaration index for
// Named-mode dispatch.
type Index struct {
	names  []string
	byHash map[uint64][]int
}

// New builds an Index over names in declaration order. Index 0 corresponds to
// names[0], and so on; names must already be unique (a record or union
// definition with duplicate field names is a programmer error, not a decode
// error).
func New(names []string) *Index {
	idx := &Index{
		names:  names,
		byHash: make(map[uint64][]int, len(names)),
	}

	for i, name := range names {
		h := hash.ID(name)
		idx.byHash[h] = append(idx.byHash[h], i)
	}

	return idx
}

// Lookup resolves a decoded key name to its declaration index. ok is false
// for an unrecognized key, which the caller must then skip rather than
// error on.
func (idx *Index) Lookup(name string) (pos int, ok bool) {
	for _, i := range idx.byHash[hash.ID(name)] {
		if idx.names[i] == name {
			return i, true
		}
	}

	return 0, false
}

// Len returns the number of declared fields.
func (idx *Index) Len() int {
	return len(idx.names)
}

// Name returns the declared name at position i.
func (idx *Index) Name(i int) string {
	return idx.names[i]
}

// Seen tracks which declared positions have been written during a single
// record or union decode, so a repeated key resolves last-write-wins (§4.2)
// instead of erroring or silently keeping the first value.
type Seen struct {
	seen []bool
}

// NewSeen allocates a Seen tracker sized for an Index with n declared
// positions.
func NewSeen(n int) *Seen {
	return &Seen{seen: make([]bool, n)}
}

// Mark records that pos has now been written, returning true if this is a
// repeat — the caller then overwrites its previously stored value rather
// than rejecting the record.
func (s *Seen) Mark(pos int) (repeat bool) {
	repeat = s.seen[pos]
	s.seen[pos] = true

	return repeat
}

// Missing returns the declared positions never marked, for the decoder to
// resolve against defaults or report as errs.ErrMissingField.
func (s *Seen) Missing() []int {
	var missing []int

	for i, ok := range s.seen {
		if !ok {
			missing = append(missing, i)
		}
	}

	return missing
}

// Reset clears all marks so the tracker can be reused for another decode.
func (s *Seen) Reset() {
	for i := range s.seen {
		s.seen[i] = false
	}
}
