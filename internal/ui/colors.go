package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

// Color palette using ANSI color codes for terminal compatibility.
// Basic 16-color codes render correctly on every terminal the dashboard
// is likely to run in, including Linux consoles without truecolor.

// Semantic colors for status indication
const (
	ColorSuccess lipgloss.Color = "2" // Green
	ColorError   lipgloss.Color = "1" // Red
	ColorWarning lipgloss.Color = "3" // Yellow
	ColorInfo    lipgloss.Color = "6" // Cyan
)

// Text colors for content hierarchy
const (
	ColorPrimary   lipgloss.Color = "7" // White/default
	ColorSecondary lipgloss.Color = "4" // Blue
	ColorMuted     lipgloss.Color = "8" // Gray (bright black)
)

// DisableColors switches all lipgloss rendering to plain text. Used by
// the --no-color flag and when NO_COLOR is set.
func DisableColors() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

// PrintWarning writes a non-fatal warning to stderr with the warning
// symbol, independent of any active TUI.
func PrintWarning(message string) {
	style := lipgloss.NewStyle().Foreground(ColorWarning)
	fmt.Fprintln(os.Stderr, style.Render(SymbolWarning+" "+message))
}
