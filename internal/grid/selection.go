package grid

import "sort"

// SelectionPolicy decides what happens to the selected set when the
// current page changes. Selection is always purged for rows that leave
// the store, regardless of policy.
type SelectionPolicy string

const (
	// PolicyPersist keeps the selection across page navigation.
	PolicyPersist SelectionPolicy = "persist"

	// PolicyClearOnNavigate empties the selection whenever the current
	// page actually changes.
	PolicyClearOnNavigate SelectionPolicy = "clear-on-navigate"
)

// ValidPolicy reports whether p names a known selection policy.
func ValidPolicy(p SelectionPolicy) bool {
	return p == PolicyPersist || p == PolicyClearOnNavigate
}

// Tracker records which rows are marked for a batch operation. Rows are
// tracked by identity, not by on-page position, so the marks survive
// renumbering and navigation.
type Tracker struct {
	members map[Identity]struct{}
}

// NewTracker returns an empty selection tracker.
func NewTracker() *Tracker {
	return &Tracker{members: make(map[Identity]struct{})}
}

// Toggle flips membership of id in the selected set.
func (t *Tracker) Toggle(id Identity) {
	if _, ok := t.members[id]; ok {
		delete(t.members, id)
		return
	}
	t.members[id] = struct{}{}
}

// IsSelected reports whether id is currently selected.
func (t *Tracker) IsSelected(id Identity) bool {
	_, ok := t.members[id]
	return ok
}

// Remove drops the given identities from the selection. Used to purge
// marks the instant their rows are removed from the store.
func (t *Tracker) Remove(ids ...Identity) {
	for _, id := range ids {
		delete(t.members, id)
	}
}

// Clear empties the selection.
func (t *Tracker) Clear() {
	t.members = make(map[Identity]struct{})
}

// Len returns the number of selected identities.
func (t *Tracker) Len() int {
	return len(t.members)
}

// Selected returns the selected identities in deterministic (sorted)
// order. The returned slice is a copy.
func (t *Tracker) Selected() []Identity {
	out := make([]Identity, 0, len(t.members))
	for id := range t.members {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
