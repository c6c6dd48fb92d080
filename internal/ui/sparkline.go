package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Sparkline block characters representing 8 vertical levels (lowest to highest).
const sparklineBlocks = "▁▂▃▄▅▆▇█"

var sparklineBlockRunes = []rune(sparklineBlocks)

// Percentage thresholds for sparkline coloring. Matches the dashboard's
// severity coloring so the graph and the summary line agree.
const (
	sparklineWarnAt = 70.0
	sparklineCritAt = 90.0
)

// RenderSparkline renders a slice of percentages as a row of block
// characters, at most width columns wide (most recent values win).
// Values are mapped onto 8 levels across the min/max range of the
// visible window, and the whole row is colored by the latest value.
func RenderSparkline(data []float64, width int) string {
	if len(data) == 0 || width <= 0 {
		return ""
	}

	if len(data) > width {
		data = data[len(data)-width:]
	}

	minVal, maxVal := data[0], data[0]
	for _, v := range data {
		if v < minVal {
			minVal = v
		}
		if v > maxVal {
			maxVal = v
		}
	}

	var sb strings.Builder
	sb.Grow(len(data) * 3) // block chars are 3 bytes in UTF-8

	numLevels := len(sparklineBlockRunes)
	valueRange := maxVal - minVal

	for _, v := range data {
		level := numLevels / 2 // flat series renders mid-height
		if valueRange > 0 {
			level = int((v - minVal) / valueRange * float64(numLevels-1))
			if level < 0 {
				level = 0
			} else if level >= numLevels {
				level = numLevels - 1
			}
		}
		sb.WriteRune(sparklineBlockRunes[level])
	}

	style := lipgloss.NewStyle().Foreground(thresholdColor(data[len(data)-1]))
	return style.Render(sb.String())
}

// thresholdColor maps a percentage to the severity palette.
func thresholdColor(percent float64) lipgloss.Color {
	switch {
	case percent >= sparklineCritAt:
		return ColorError
	case percent >= sparklineWarnAt:
		return ColorWarning
	default:
		return ColorSuccess
	}
}
