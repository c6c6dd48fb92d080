package dashboard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/rileyhilliard/ttop/internal/ui"
)

// Thresholds for metric severity coloring.
const (
	WarningThreshold  = 70.0
	CriticalThreshold = 90.0
)

// Styles for the dashboard. The palette sticks to ANSI colors so the
// display works on basic terminals.
var (
	TitleStyle = lipgloss.NewStyle().
			Foreground(ui.ColorInfo).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ui.ColorSecondary)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ui.ColorPrimary)

	UnavailableStyle = lipgloss.NewStyle().
				Foreground(ui.ColorMuted)

	FooterStyle = lipgloss.NewStyle().
			Foreground(ui.ColorMuted)
)

// severityStyle colors a percentage by how close it is to saturation.
func severityStyle(percent float64) lipgloss.Style {
	switch {
	case percent >= CriticalThreshold:
		return lipgloss.NewStyle().Foreground(ui.ColorError)
	case percent >= WarningThreshold:
		return lipgloss.NewStyle().Foreground(ui.ColorWarning)
	default:
		return lipgloss.NewStyle().Foreground(ui.ColorSuccess)
	}
}
