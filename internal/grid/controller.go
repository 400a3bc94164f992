package grid

import (
	"sync"

	"github.com/rs/zerolog"
)

// State is the controller's position in its intent state machine.
// Transitions are Idle -> Mutating -> Idle for add/delete/load and
// Idle -> Navigating -> Idle for page moves. Observers outside an
// in-flight intent only ever see Idle.
type State int

const (
	// StateIdle means no intent is in flight.
	StateIdle State = iota
	// StateMutating means an add, delete, or bulk load is in flight.
	StateMutating
	// StateNavigating means a page move is in flight.
	StateNavigating
)

// String returns the state name for logging.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateMutating:
		return "mutating"
	case StateNavigating:
		return "navigating"
	default:
		return "unknown"
	}
}

// RenderState is the single snapshot the presentation layer consumes.
// It is internally consistent: Rows holds exactly the rows whose
// sequence indices fall in the current page window, and the pagination
// summary is derived from the same settled store size.
type RenderState struct {
	// Rows are the rows on the current page, in sequence order.
	Rows []Row
	// Page summarizes pagination state for the same instant.
	Page PageMeta
	// Selected holds the selected identities in deterministic order.
	Selected []Identity
}

// Controller orchestrates the row store, the pure pagination
// derivations, and the selection tracker in response to user intents,
// and republishes a consistent snapshot after every transition.
//
// Intents are serialized: one arriving while another is in flight
// blocks until the in-flight transition settles, so pagination is
// always recomputed against a fully settled store and batch deletes
// appear atomic to observers.
type Controller struct {
	mu sync.Mutex

	store     *Store
	selection *Tracker

	pageSize    int
	currentPage int
	policy      SelectionPolicy
	state       State

	logger zerolog.Logger
}

// NewController creates a controller over an empty store with the given
// fixed page size and the persist selection policy.
func NewController(pageSize int) (*Controller, error) {
	return NewControllerWithPolicy(pageSize, PolicyPersist)
}

// NewControllerWithPolicy creates a controller with an explicit
// selection policy.
func NewControllerWithPolicy(pageSize int, policy SelectionPolicy) (*Controller, error) {
	if pageSize < 1 {
		return nil, ErrPageSizeInvalid
	}
	if !ValidPolicy(policy) {
		policy = PolicyPersist
	}
	return &Controller{
		store:       NewStore(),
		selection:   NewTracker(),
		pageSize:    pageSize,
		currentPage: 1,
		policy:      policy,
		state:       StateIdle,
		logger:      zerolog.Nop(),
	}, nil
}

// SetLogger attaches a logger for transition-level debug logging.
func (c *Controller) SetLogger(logger zerolog.Logger) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.logger = logger
}

// AddRow appends a row with the given payload and jumps the view to the
// page containing it, which is always the last page.
func (c *Controller) AddRow(fields Fields) Row {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enter(StateMutating)
	defer c.settle()

	row := c.store.Append(fields)
	c.currentPage = TotalPages(c.store.Count(), c.pageSize)
	c.logger.Debug().
		Str("identity", string(row.Identity)).
		Int("seq", row.Seq).
		Int("page", c.currentPage).
		Msg("row added")
	return row
}

// LoadRows bulk-loads one row per payload in a single pass, resets the
// view to the first page, and clears any selection. It returns the
// number of rows added.
func (c *Controller) LoadRows(payloads []Fields) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enter(StateMutating)
	defer c.settle()

	added := c.store.Load(payloads)
	c.selection.Clear()
	c.currentPage = 1
	c.logger.Debug().
		Int("added", added).
		Int("total", c.store.Count()).
		Msg("rows loaded")
	return added
}

// ToggleSelect flips the selection mark on the row with the given
// identity. Unknown identities are rejected with ErrRowNotFound so the
// selection only ever references live rows.
func (c *Controller) ToggleSelect(id Identity) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.store.Contains(id) {
		return ErrRowNotFound
	}
	c.selection.Toggle(id)
	return nil
}

// DeleteSelected removes every selected row as one atomic batch,
// clears the selection, and clamps the current page to the recomputed
// page count. It returns the number of rows removed.
//
// With an empty selection it returns ErrNoSelection and changes
// nothing; the caller decides how to surface that. Identities that
// vanished from the store between selection and deletion are treated
// as already resolved and silently dropped from the batch.
func (c *Controller) DeleteSelected() (int, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.selection.Len() == 0 {
		return 0, ErrNoSelection
	}

	c.enter(StateMutating)
	defer c.settle()

	doomed := c.selection.Selected()
	removed, err := c.store.RemoveByIdentity(doomed...)
	if err != nil {
		// Stale marks are already resolved; nothing to surface.
		c.logger.Debug().Err(err).Msg("selection referenced removed rows")
	}
	c.selection.Remove(doomed...)

	totalPages := TotalPages(c.store.Count(), c.pageSize)
	c.currentPage = ClampPage(c.currentPage, totalPages)
	c.logger.Debug().
		Int("removed", removed).
		Int("total", c.store.Count()).
		Int("page", c.currentPage).
		Msg("batch delete applied")
	return removed, nil
}

// GotoNextPage advances the view one page, saturating at the last page,
// and returns the resulting current page.
func (c *Controller) GotoNextPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enter(StateNavigating)
	defer c.settle()

	next := NextPage(c.currentPage, TotalPages(c.store.Count(), c.pageSize))
	c.moveTo(next)
	return c.currentPage
}

// GotoPrevPage retreats the view one page, saturating at page 1, and
// returns the resulting current page.
func (c *Controller) GotoPrevPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enter(StateNavigating)
	defer c.settle()

	c.moveTo(PrevPage(c.currentPage))
	return c.currentPage
}

// GotoPage moves the view to page n, silently clamping out-of-range
// requests into [1, totalPages], and returns the resulting current
// page. Navigation never mutates the store.
func (c *Controller) GotoPage(n int) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.enter(StateNavigating)
	defer c.settle()

	c.moveTo(ClampPage(n, TotalPages(c.store.Count(), c.pageSize)))
	return c.currentPage
}

// moveTo applies a page change, honoring the selection policy. A move
// to the current page is a no-op.
func (c *Controller) moveTo(page int) {
	if page == c.currentPage {
		return
	}
	c.currentPage = page
	if c.policy == PolicyClearOnNavigate {
		c.selection.Clear()
	}
	c.logger.Debug().Int("page", c.currentPage).Msg("page changed")
}

// RenderState returns the snapshot for the presentation layer. The
// rows and the pagination summary are derived from the same settled
// store state, so their sequence indices exactly match the advertised
// window.
func (c *Controller) RenderState() RenderState {
	c.mu.Lock()
	defer c.mu.Unlock()

	meta := MetaFor(c.currentPage, c.pageSize, c.store.Count())
	start, end := Window(meta.CurrentPage, meta.PageSize, meta.TotalRows)
	return RenderState{
		Rows:     c.store.Window(start, end),
		Page:     meta,
		Selected: c.selection.Selected(),
	}
}

// SelectedCount returns the number of currently selected rows.
func (c *Controller) SelectedCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.selection.Len()
}

// RowCount returns the number of rows in the store.
func (c *Controller) RowCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.store.Count()
}

// enter records a transition out of Idle. Must be called with mu held.
func (c *Controller) enter(s State) {
	c.state = s
}

// settle records the transition back to Idle. Must be called with mu
// held.
func (c *Controller) settle() {
	c.state = StateIdle
}
