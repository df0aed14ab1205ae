// Package ui holds the terminal styling shared by the day binaries and the
// xmas CLI. Colors adapt to light and dark terminals.
package ui

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	Red    = lipgloss.Color("#c0392b")
	Green  = lipgloss.Color("#2e8b57")
	Gold   = lipgloss.Color("#f1c40f")
	Snow   = lipgloss.Color("#f2f2f2")
	Pine   = lipgloss.Color("#0b3d2e")
	Slate  = lipgloss.Color("#6b7785")
	Silver = lipgloss.Color("#a9b3bf")
)

// Theme holds the current color scheme
type Theme struct {
	Foreground lipgloss.Color
	Accent     lipgloss.Color
	Muted      lipgloss.Color
	IsDark     bool
}

func LightTheme() Theme {
	return Theme{Foreground: Pine, Accent: Red, Muted: Slate}
}

func DarkTheme() Theme {
	return Theme{Foreground: Snow, Accent: Gold, Muted: Silver, IsDark: true}
}

// DetectTheme picks the dark theme when COLORFGBG reports a dark
// background or XMAS_DARK_MODE=1.
func DetectTheme() Theme {
	if parts := strings.Split(os.Getenv("COLORFGBG"), ";"); len(parts) == 2 {
		if bg, err := strconv.Atoi(parts[1]); err == nil && ((bg >= 0 && bg <= 6) || bg == 8) {
			return DarkTheme()
		}
	}
	if os.Getenv("XMAS_DARK_MODE") == "1" {
		return DarkTheme()
	}
	return LightTheme()
}

// Styles holds all the styled components
type Styles struct {
	Theme Theme

	Title   lipgloss.Style
	Part    lipgloss.Style
	Result  lipgloss.Style
	Value   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Command lipgloss.Style
}

// NewStyles creates a new Styles instance with the given theme
func NewStyles(theme Theme) Styles {
	return Styles{
		Theme: theme,

		Title: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Bold(true),

		Part: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Underline(true),

		Result: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Value: lipgloss.NewStyle().
			Foreground(theme.Foreground).
			Bold(true),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Italic(true),

		Success: lipgloss.NewStyle().
			Foreground(Green).
			Bold(true),

		Error: lipgloss.NewStyle().
			Foreground(Red).
			Bold(true),

		Command: lipgloss.NewStyle().
			Foreground(theme.Accent).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(theme.Muted),
	}
}

// DefaultStyles returns styles for the detected terminal theme
func DefaultStyles() Styles {
	return NewStyles(DetectTheme())
}

// PlainStyles renders text without any escape sequences; used by tests and
// when output is not a terminal.
func PlainStyles() Styles {
	plain := lipgloss.NewStyle()
	return Styles{
		Theme:   LightTheme(),
		Title:   plain,
		Part:    plain,
		Result:  plain,
		Value:   plain,
		Muted:   plain,
		Success: plain,
		Error:   plain,
		Command: plain,
	}
}
