// Package tui implements footprint's interactive terminal interface and the
// lipgloss styling shared with the CLI's styled output.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/rshade/footprint/internal/greenops"
)

// Color palette.
//
//nolint:gochecknoglobals // Shared styling constants.
var (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("245")
	ColorValue     = lipgloss.Color("255")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("62")
	ColorHighlight = lipgloss.Color("212")
	ColorSpinner   = lipgloss.Color("205")

	ColorOK       = lipgloss.Color("42")
	ColorWarning  = lipgloss.Color("214")
	ColorCritical = lipgloss.Color("196")
)

// Text styles.
//
//nolint:gochecknoglobals // Shared styling constants.
var (
	HeaderStyle   = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle    = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	SubtleStyle   = lipgloss.NewStyle().Foreground(ColorMuted)
	OKStyle       = lipgloss.NewStyle().Foreground(ColorOK)
	WarningStyle  = lipgloss.NewStyle().Foreground(ColorWarning)
	CriticalStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorCritical)
	InfoStyle     = lipgloss.NewStyle().Foreground(ColorHighlight)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)

	BorderStyle = lipgloss.NewStyle().Foreground(ColorBorder)

	FocusedStyle = lipgloss.NewStyle().Foreground(ColorHighlight)
	BlurredStyle = lipgloss.NewStyle().Foreground(ColorMuted)
)

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// TerminalWidth returns the width of stdout, or fallback when it is not a
// terminal.
func TerminalWidth(fallback int) int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// ImpactStyle colors an impact rating: green for low, amber for medium and
// red for high.
func ImpactStyle(level greenops.ImpactLevel) lipgloss.Style {
	switch level {
	case greenops.ImpactLow:
		return OKStyle.Bold(true)
	case greenops.ImpactMedium:
		return WarningStyle.Bold(true)
	default:
		return CriticalStyle
	}
}
