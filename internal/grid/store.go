package grid

import (
	"fmt"
	"strings"
)

// Store owns the ordered row collection and assigns each row its
// sequence index. It knows nothing about pagination; mutations simply
// leave the sequence range [1, Count()] dense and contiguous so any
// pagination derived from the old size is stale and must be recomputed
// by the caller.
//
// Store is not safe for concurrent use; the Controller serializes
// access to it.
type Store struct {
	rows  []Row
	index map[Identity]int // identity -> slice position
}

// NewStore returns an empty row store.
func NewStore() *Store {
	return &Store{
		index: make(map[Identity]int),
	}
}

// Append creates a row with the next sequence index, appends it, and
// returns it. It always succeeds: the fields payload is opaque and
// never validated.
func (s *Store) Append(fields Fields) Row {
	row := Row{
		Identity: NewIdentity(),
		Seq:      len(s.rows) + 1,
		Fields:   fields,
	}
	s.index[row.Identity] = len(s.rows)
	s.rows = append(s.rows, row)
	return row
}

// Load bulk-appends one row per payload in a single pass and returns
// the number of rows added. It produces the same invariants as calling
// Append once per payload.
func (s *Store) Load(payloads []Fields) int {
	base := len(s.rows)
	if cap(s.rows)-base < len(payloads) {
		grown := make([]Row, base, base+len(payloads))
		copy(grown, s.rows)
		s.rows = grown
	}
	for i, fields := range payloads {
		row := Row{
			Identity: NewIdentity(),
			Seq:      base + i + 1,
			Fields:   fields,
		}
		s.index[row.Identity] = base + i
		s.rows = append(s.rows, row)
	}
	return len(payloads)
}

// RemoveByIdentity removes every row whose identity appears in ids, as
// one batch, then renumbers the remaining rows densely from 1 while
// preserving their relative order.
//
// The batch is partial-match tolerant: identities absent from the store
// do not abort the removal of the ones that are present. When any
// requested identity is missing, the effective removals are still
// applied and the returned error wraps ErrRowNotFound naming the
// missing identities. The returned count is the number of rows actually
// removed.
func (s *Store) RemoveByIdentity(ids ...Identity) (int, error) {
	doomed := make(map[Identity]struct{}, len(ids))
	var missing []string
	for _, id := range ids {
		if _, ok := s.index[id]; ok {
			doomed[id] = struct{}{}
		} else {
			missing = append(missing, string(id))
		}
	}

	if len(doomed) > 0 {
		kept := s.rows[:0]
		for _, row := range s.rows {
			if _, gone := doomed[row.Identity]; gone {
				delete(s.index, row.Identity)
				continue
			}
			kept = append(kept, row)
		}
		s.rows = kept

		// Dense renumbering: sequence indices form [1, Count()] again.
		for i := range s.rows {
			s.rows[i].Seq = i + 1
			s.index[s.rows[i].Identity] = i
		}
	}

	if len(missing) > 0 {
		return len(doomed), fmt.Errorf("%w: %s", ErrRowNotFound, strings.Join(missing, ", "))
	}
	return len(doomed), nil
}

// Count returns the number of rows in the store.
func (s *Store) Count() int {
	return len(s.rows)
}

// Contains reports whether a row with the given identity is present.
func (s *Store) Contains(id Identity) bool {
	_, ok := s.index[id]
	return ok
}

// RowAt returns the row with the given 1-based sequence index.
func (s *Store) RowAt(seq int) (Row, error) {
	if seq < 1 || seq > len(s.rows) {
		return Row{}, fmt.Errorf("%w: sequence index %d", ErrRowNotFound, seq)
	}
	return s.rows[seq-1], nil
}

// Window returns a copy of the rows whose sequence indices fall in the
// inclusive 1-based range [start, end]. An inverted or out-of-range
// window yields an empty slice.
func (s *Store) Window(start, end int) []Row {
	if start < 1 {
		start = 1
	}
	if end > len(s.rows) {
		end = len(s.rows)
	}
	if start > end {
		return []Row{}
	}
	out := make([]Row, end-start+1)
	copy(out, s.rows[start-1:end])
	return out
}
