package ui

import "github.com/charmbracelet/lipgloss"

// Color palette
// - Default (white/black): primary text
// - Accent (soft purple #A78BFA): highlights, paths, property keys
// - Muted (gray): secondary info, type tags
// - No colored success/error/warning - use unicode symbols only

var (
	// Accent style for file paths and property keys
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(defaultAccent))

	// Muted style for secondary info and hints
	Muted = lipgloss.NewStyle().Foreground(lipgloss.Color("#6C7086"))

	// Bold style for emphasis
	Bold = lipgloss.NewStyle().Bold(true)
)

const defaultAccent = "#A78BFA"

var accentColor = defaultAccent

// ConfigureTheme applies an accent color override from config.
// Accepts ANSI codes ("0".."255") or hex colors ("#RRGGBB"); anything else
// keeps the default.
func ConfigureTheme(accent string) {
	if accent == "" || !validAccent(accent) {
		return
	}
	accentColor = accent
	Accent = lipgloss.NewStyle().Foreground(lipgloss.Color(accent))
}

// AccentColor returns the configured accent color.
func AccentColor() string {
	return accentColor
}

func validAccent(s string) bool {
	if len(s) == 7 && s[0] == '#' {
		for _, r := range s[1:] {
			if !isHexDigit(r) {
				return false
			}
		}
		return true
	}
	if len(s) >= 1 && len(s) <= 3 {
		for _, r := range s {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}

func isHexDigit(r rune) bool {
	return (r >= '0' && r <= '9') || (r >= 'a' && r <= 'f') || (r >= 'A' && r <= 'F')
}
