// Package tui holds the terminal presentation of ecofootprint: TTY detection,
// lipgloss styles, the styled report, and the Bubble Tea input wizard.
package tui

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

// Palette.
//
//nolint:gochecknoglobals // Shared color palette.
var (
	ColorHeader    = lipgloss.Color("39")
	ColorLabel     = lipgloss.Color("250")
	ColorValue     = lipgloss.Color("255")
	ColorHighlight = lipgloss.Color("42")
	ColorError     = lipgloss.Color("196")
	ColorMuted     = lipgloss.Color("240")
	ColorBorder    = lipgloss.Color("240")
)

// Shared styles.
//
//nolint:gochecknoglobals // Shared styles.
var (
	HeaderStyle    = lipgloss.NewStyle().Bold(true).Foreground(ColorHeader)
	LabelStyle     = lipgloss.NewStyle().Foreground(ColorLabel)
	ValueStyle     = lipgloss.NewStyle().Bold(true).Foreground(ColorValue)
	HighlightStyle = lipgloss.NewStyle().Bold(true).Foreground(ColorHighlight)
	ErrorStyle     = lipgloss.NewStyle().Foreground(ColorError)
	MutedStyle     = lipgloss.NewStyle().Foreground(ColorMuted).Italic(true)
	BoxStyle       = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder).
			Padding(0, 1)
)

// IsTTY reports whether both stdin and stdout are terminals.
func IsTTY() bool {
	return IsTerminal(os.Stdin) && IsTerminal(os.Stdout)
}

// IsTerminal reports whether f is a terminal.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
