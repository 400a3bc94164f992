package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode selects how a grid snapshot is presented.
type OutputMode int

const (
	// OutputModePlain is unstyled text, safe for pipes and CI logs.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is colored, non-interactive output.
	OutputModeStyled
	// OutputModeInteractive is the full-screen Bubble Tea grid.
	OutputModeInteractive
)

// String returns the mode name for logging.
func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// DetectOutputMode picks the richest mode the environment supports.
// Interactive requires stdin and stdout to both be terminals; a set
// NO_COLOR environment variable or an explicit plain request drops to
// plain output.
func DetectOutputMode(plain, noInteractive bool) OutputMode {
	if plain || os.Getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if !isTerminal(os.Stdout) {
		return OutputModePlain
	}
	if noInteractive || !isTerminal(os.Stdin) {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
