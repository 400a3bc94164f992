package tui

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tmarsden/rowgrid/internal/grid"
)

// GridState represents the current state of the grid TUI.
type GridState int

const (
	// GridStateBrowsing indicates the user is navigating the grid.
	GridStateBrowsing GridState = iota
	// GridStateQuitting indicates the application is exiting.
	GridStateQuitting
)

// Default dimensions for the grid model.
const (
	gridDefaultWidth  = 100
	gridDefaultHeight = 24

	// chromeLines is the vertical space used by title, pager, status
	// bar, and help line around the table.
	chromeLines = 6
)

// GridModel is the Bubble Tea model for the interactive grid. It is a
// thin consumer of Controller snapshots: every intent is forwarded to
// the controller and the view is rebuilt from the next RenderState, so
// the TUI can never show pagination that disagrees with the store.
//
//nolint:recvcheck // Bubble Tea requires value receivers for Init/Update/View interface methods.
type GridModel struct {
	controller *grid.Controller

	// snapshot is the last published render state.
	snapshot grid.RenderState

	// Interactive components
	table table.Model
	pager paginator.Model

	// Display configuration
	width  int
	height int

	// notice carries a recoverable-condition message (for example a
	// delete with nothing selected) until the next intent.
	notice string

	state GridState
}

// NewGridModel creates the interactive grid over an existing controller.
func NewGridModel(controller *grid.Controller) GridModel {
	p := paginator.New()
	p.Type = paginator.Arabic

	m := GridModel{
		controller: controller,
		pager:      p,
		width:      gridDefaultWidth,
		height:     gridDefaultHeight,
		state:      GridStateBrowsing,
	}
	m.refresh()
	return m
}

// Init initializes the model (Bubble Tea interface).
func (m GridModel) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state (Bubble Tea interface).
func (m GridModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

// handleKey routes keyboard input to controller intents.
func (m GridModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.notice = ""

	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.state = GridStateQuitting
		return m, tea.Quit

	case " ":
		m.toggleAtCursor()
		return m, nil

	case "a":
		m.controller.AddRow(grid.Fields{})
		m.refresh()
		m.table.GotoBottom()
		return m, nil

	case "d":
		if _, err := m.controller.DeleteSelected(); err != nil {
			// Recoverable no-op; surface it and keep state untouched.
			m.notice = "nothing selected"
			return m, nil
		}
		m.refresh()
		return m, nil

	case "right", "l", "n":
		m.controller.GotoNextPage()
		m.refresh()
		return m, nil

	case "left", "h", "p":
		m.controller.GotoPrevPage()
		m.refresh()
		return m, nil

	case "g", "home":
		m.controller.GotoPage(1)
		m.refresh()
		return m, nil

	case "G", "end":
		m.controller.GotoPage(m.snapshot.Page.TotalPages)
		m.refresh()
		return m, nil
	}

	// Everything else (cursor movement) is the table's business.
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// toggleAtCursor flips selection on the row under the table cursor.
func (m *GridModel) toggleAtCursor() {
	cursor := m.table.Cursor()
	if cursor < 0 || cursor >= len(m.snapshot.Rows) {
		return
	}
	id := m.snapshot.Rows[cursor].Identity
	if err := m.controller.ToggleSelect(id); err != nil {
		// The row vanished between snapshot and intent; resync.
		m.refresh()
		return
	}
	m.refreshKeepingCursor(cursor)
}

// refresh rebuilds the view from a fresh controller snapshot.
func (m *GridModel) refresh() {
	m.refreshKeepingCursor(0)
}

// refreshKeepingCursor rebuilds the view and restores the cursor to the
// given row, clamped to the new window.
func (m *GridModel) refreshKeepingCursor(cursor int) {
	m.snapshot = m.controller.RenderState()

	tableHeight := m.height - chromeLines
	if tableHeight < 1 {
		tableHeight = 1
	}
	m.table = NewGridTable(m.snapshot, tableHeight)
	if cursor >= len(m.snapshot.Rows) {
		cursor = len(m.snapshot.Rows) - 1
	}
	if cursor > 0 {
		m.table.SetCursor(cursor)
	}

	m.pager.TotalPages = m.snapshot.Page.TotalPages
	m.pager.Page = m.snapshot.Page.CurrentPage - 1
}

// View renders the current view (Bubble Tea interface).
func (m GridModel) View() string {
	if m.state == GridStateQuitting {
		return ""
	}

	sections := []string{
		TitleStyle.Render("rowgrid"),
		m.table.View(),
		m.pager.View(),
		StatusStyle.Render(StatusLine(m.snapshot)),
	}
	if m.notice != "" {
		sections = append(sections, WarnStyle.Render(m.notice))
	}
	sections = append(sections,
		StatusStyle.Render("space select · a add · d delete · ←/→ pages · g/G first/last · q quit"))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// Snapshot returns the model's last published render state.
func (m GridModel) Snapshot() grid.RenderState {
	return m.snapshot
}
