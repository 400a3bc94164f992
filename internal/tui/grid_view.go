package tui

import (
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/tmarsden/rowgrid/internal/grid"
)

// Layout constants.
const (
	markColumnWidth     = 3
	seqColumnWidth      = 6
	identityColumnWidth = 26
	fieldsColumnWidth   = 48
	maxFieldsDisplayLen = 48
	truncateSuffix      = "..."
	borderPadding       = 2

	selectedMark   = "[x]"
	unselectedMark = "[ ]"
)

// printer formats row counts with thousands separators.
//
//nolint:gochecknoglobals // Global printer is idiomatic for x/text/message usage.
var printer = message.NewPrinter(language.English)

// summarizeFields flattens an opaque row payload into a stable, compact
// single-line summary. Keys are sorted so the same payload always
// renders the same way.
func summarizeFields(fields grid.Fields) string {
	if len(fields) == 0 {
		return "-"
	}
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, fields[k]))
	}
	summary := strings.Join(parts, " ")
	if len(summary) > maxFieldsDisplayLen {
		summary = summary[:maxFieldsDisplayLen-len(truncateSuffix)] + truncateSuffix
	}
	return summary
}

// tableRows converts a snapshot's window into display rows. The
// selection mark is derived from the snapshot's own selected set so the
// two can never disagree.
func tableRows(state grid.RenderState) []table.Row {
	selected := make(map[grid.Identity]struct{}, len(state.Selected))
	for _, id := range state.Selected {
		selected[id] = struct{}{}
	}

	rows := make([]table.Row, len(state.Rows))
	for i, r := range state.Rows {
		mark := unselectedMark
		if _, ok := selected[r.Identity]; ok {
			mark = selectedMark
		}
		rows[i] = table.Row{
			mark,
			strconv.Itoa(r.Seq),
			string(r.Identity),
			summarizeFields(r.Fields),
		}
	}
	return rows
}

// NewGridTable creates and configures a table model for a grid snapshot.
func NewGridTable(state grid.RenderState, height int) table.Model {
	columns := []table.Column{
		{Title: "", Width: markColumnWidth},
		{Title: "#", Width: seqColumnWidth},
		{Title: "Identity", Width: identityColumnWidth},
		{Title: "Fields", Width: fieldsColumnWidth},
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(tableRows(state)),
		table.WithFocused(true),
		table.WithHeight(height),
	)

	s := table.DefaultStyles()
	s.Header = TableHeaderStyle
	s.Selected = TableSelectedStyle
	t.SetStyles(s)

	return t
}

// StatusLine summarizes a snapshot for the status bar: page position,
// row count, and selection count.
func StatusLine(state grid.RenderState) string {
	line := printer.Sprintf("page %d/%d · %d rows",
		state.Page.CurrentPage, state.Page.TotalPages, state.Page.TotalRows)
	if n := len(state.Selected); n > 0 {
		line += printer.Sprintf(" · %d selected", n)
	}
	return line
}

// RenderStyled renders a one-shot, colored snapshot for non-interactive
// terminals.
func RenderStyled(state grid.RenderState, width int) string {
	t := NewGridTable(state, len(state.Rows)+1)

	content := lipgloss.JoinVertical(lipgloss.Left,
		TitleStyle.Render("rowgrid"),
		t.View(),
		StatusStyle.Render(StatusLine(state)),
	)
	return BoxStyle.Width(width - borderPadding).Render(content)
}

// RenderPlain writes an unstyled snapshot, safe for pipes and CI logs.
func RenderPlain(w io.Writer, state grid.RenderState) error {
	selected := make(map[grid.Identity]struct{}, len(state.Selected))
	for _, id := range state.Selected {
		selected[id] = struct{}{}
	}

	for _, r := range state.Rows {
		mark := " "
		if _, ok := selected[r.Identity]; ok {
			mark = "x"
		}
		if _, err := fmt.Fprintf(w, "[%s] %6d  %-26s  %s\n",
			mark, r.Seq, r.Identity, summarizeFields(r.Fields)); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintln(w, StatusLine(state))
	return err
}
