package grid

import (
	"crypto/rand"

	"github.com/oklog/ulid/v2"
)

// Identity is the opaque, stable key of a row. It is unique within a
// Store and immutable once assigned; selection and batch removal are
// keyed on it rather than on any on-page position.
type Identity string

// NewIdentity returns a fresh, lexicographically sortable identity.
func NewIdentity() Identity {
	return Identity(ulid.MustNew(ulid.Now(), rand.Reader).String())
}

// Fields is the caller-owned payload of a row. The grid core never
// inspects it; it is carried through to the presentation layer as-is.
type Fields map[string]any

// Row is one record of the collection.
type Row struct {
	// Identity is the row's stable key.
	Identity Identity

	// Seq is the row's dense 1-based position among all rows,
	// independent of pagination. It is recomputed whenever the
	// collection's order or length changes.
	Seq int

	// Fields is the opaque payload supplied by the caller.
	Fields Fields
}
