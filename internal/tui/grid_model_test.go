package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tmarsden/rowgrid/internal/grid"
)

// newTestModel returns a grid model over a controller seeded with n rows.
func newTestModel(t *testing.T, n int) GridModel {
	t.Helper()
	c, err := grid.NewController(50)
	require.NoError(t, err)

	payloads := make([]grid.Fields, n)
	for i := range payloads {
		payloads[i] = grid.Fields{"n": i + 1}
	}
	c.LoadRows(payloads)
	return NewGridModel(c)
}

// press feeds a key string through Update and returns the new model.
func press(t *testing.T, m GridModel, key string) GridModel {
	t.Helper()
	var msg tea.Msg
	switch key {
	case " ":
		msg = tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	updated, _ := m.Update(msg)
	model, ok := updated.(GridModel)
	require.True(t, ok)
	return model
}

func TestNewGridModel(t *testing.T) {
	t.Run("initial snapshot shows first page", func(t *testing.T) {
		m := newTestModel(t, 1000)
		state := m.Snapshot()
		assert.Equal(t, 1, state.Page.CurrentPage)
		assert.Equal(t, 20, state.Page.TotalPages)
		require.Len(t, state.Rows, 50)
		assert.Equal(t, 1, state.Rows[0].Seq)
	})

	t.Run("empty grid renders without rows", func(t *testing.T) {
		m := newTestModel(t, 0)
		assert.Empty(t, m.Snapshot().Rows)
		assert.NotEmpty(t, m.View())
	})
}

func TestGridModelNavigation(t *testing.T) {
	m := newTestModel(t, 1000)

	m = press(t, m, "n")
	assert.Equal(t, 2, m.Snapshot().Page.CurrentPage)
	assert.Equal(t, 51, m.Snapshot().Rows[0].Seq)

	m = press(t, m, "p")
	assert.Equal(t, 1, m.Snapshot().Page.CurrentPage)
	assert.Equal(t, 1, m.Snapshot().Rows[0].Seq)

	m = press(t, m, "G")
	assert.Equal(t, 20, m.Snapshot().Page.CurrentPage)

	m = press(t, m, "g")
	assert.Equal(t, 1, m.Snapshot().Page.CurrentPage)
}

func TestGridModelAddRow(t *testing.T) {
	m := newTestModel(t, 1000)

	m = press(t, m, "a")

	state := m.Snapshot()
	assert.Equal(t, 1001, state.Page.TotalRows)
	assert.Equal(t, 21, state.Page.TotalPages)
	assert.Equal(t, 21, state.Page.CurrentPage)
	require.Len(t, state.Rows, 1)
	assert.Equal(t, 1001, state.Rows[0].Seq)
}

func TestGridModelToggleAndDelete(t *testing.T) {
	m := newTestModel(t, 60)

	// Select the row under the cursor (first row of page 1).
	m = press(t, m, " ")
	require.Len(t, m.Snapshot().Selected, 1)

	m = press(t, m, "d")

	state := m.Snapshot()
	assert.Equal(t, 59, state.Page.TotalRows)
	assert.Empty(t, state.Selected)
	// Indices renumbered densely: first visible row is seq 1 again.
	assert.Equal(t, 1, state.Rows[0].Seq)
}

func TestGridModelDeleteWithoutSelection(t *testing.T) {
	m := newTestModel(t, 10)
	before := m.Snapshot()

	m = press(t, m, "d")

	assert.Equal(t, before, m.Snapshot())
	assert.Contains(t, m.View(), "nothing selected")
}

func TestGridModelQuit(t *testing.T) {
	m := newTestModel(t, 5)
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	model, ok := updated.(GridModel)
	require.True(t, ok)
	assert.Equal(t, GridStateQuitting, model.state)
	assert.NotNil(t, cmd)
	assert.Empty(t, model.View())
}

func TestGridModelWindowResize(t *testing.T) {
	m := newTestModel(t, 100)
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	model, ok := updated.(GridModel)
	require.True(t, ok)
	assert.Equal(t, 120, model.width)
	assert.Equal(t, 40, model.height)
}
