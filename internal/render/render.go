// Package render formats translation results for the terminal.
package render

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/txcv/cli/internal/translate"
)

// Mode controls when output is colored.
type Mode int

const (
	ModeAuto Mode = iota
	ModeAlways
	ModeDisable
)

// ParseMode converts a --color flag value into a Mode. The empty string
// means Auto.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "disable":
		return ModeDisable, nil
	default:
		return ModeAuto, fmt.Errorf("invalid color mode %q: must be 'always', 'auto' or 'disable'", s)
	}
}

// Apply sets the lipgloss color profile for the mode. Auto keeps whatever
// profile was detected from the terminal.
func Apply(mode Mode) {
	switch mode {
	case ModeAlways:
		lipgloss.SetColorProfile(termenv.ANSI256)
	case ModeDisable:
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

var (
	wordStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
	translatedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
)

// Line renders one "word -> translation" mapping.
func Line(r translate.Result) string {
	return fmt.Sprintf("%s -> %s", wordStyle.Render(r.Word), translatedStyle.Render(r.Translated))
}
