package ui

import "fmt"

// Status symbols, rendered in the terminal's default color.
const (
	SymbolSuccess = "✓"
	SymbolError   = "✗"
	SymbolWarning = "⚠"
	SymbolInfo    = "ℹ"
)

// Success formats a success message with the ✓ symbol.
func Success(msg string) string {
	return fmt.Sprintf("%s %s", SymbolSuccess, msg)
}

// Error formats an error message with the ✗ symbol.
func Error(msg string) string {
	return fmt.Sprintf("%s %s", SymbolError, msg)
}

// Warning formats a warning message with the ⚠ symbol.
func Warning(msg string) string {
	return fmt.Sprintf("%s %s", SymbolWarning, msg)
}

// Info formats an informational message with the ℹ symbol.
func Info(msg string) string {
	return fmt.Sprintf("%s %s", SymbolInfo, msg)
}

// Hint formats a muted hint line.
func Hint(msg string) string {
	return Muted.Render(msg)
}

// Path renders a file path in the accent color.
func Path(p string) string {
	return Accent.Render(p)
}

// Key renders a property key in the accent color.
func Key(k string) string {
	return Accent.Render(k)
}
