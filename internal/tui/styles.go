package tui

import "github.com/charmbracelet/lipgloss"

// Shared lipgloss styles for the grid views.
//
//nolint:gochecknoglobals // Styles are package-level by convention.
var (
	// TitleStyle renders the grid header line.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	// InfoStyle renders informational banners.
	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86"))

	// StatusStyle renders the status bar under the table.
	StatusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// WarnStyle renders recoverable-condition messages (for example a
	// delete with nothing selected).
	WarnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	// TableHeaderStyle renders the table header row.
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderBottom(true).
				BorderForeground(lipgloss.Color("240"))

	// TableSelectedStyle highlights the cursor row.
	TableSelectedStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("229")).
				Background(lipgloss.Color("57")).
				Bold(false)

	// BoxStyle wraps one-shot snapshot output.
	BoxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1)
)
