package tui

import "os"

// OutputMode is how command output should be presented.
type OutputMode int

const (
	// OutputModePlain is unstyled text, for pipes and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is lipgloss-styled, non-interactive text.
	OutputModeStyled
	// OutputModeInteractive runs a Bubble Tea program.
	OutputModeInteractive
)

// String returns the mode name.
func (m OutputMode) String() string {
	switch m {
	case OutputModeInteractive:
		return "interactive"
	case OutputModeStyled:
		return "styled"
	default:
		return "plain"
	}
}

// DetectOutputMode picks an output mode from flags, environment and the
// terminal. plain and noColor always win; forceColor yields styled output
// even when stdout is not a terminal.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, IsTTY(), os.Getenv)
}

func detectOutputMode(forceColor, noColor, plain, tty bool, getenv func(string) string) OutputMode {
	if plain || noColor || getenv("NO_COLOR") != "" {
		return OutputModePlain
	}
	if getenv("TERM") == "dumb" || getenv("CI") != "" {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if !tty {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	return OutputModeInteractive
}
