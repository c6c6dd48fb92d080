package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderSparklineEmptyInput(t *testing.T) {
	assert.Empty(t, RenderSparkline(nil, 10))
	assert.Empty(t, RenderSparkline([]float64{}, 10))
	assert.Empty(t, RenderSparkline([]float64{50, 60}, 0))
	assert.Empty(t, RenderSparkline([]float64{50, 60}, -5))
}

func TestRenderSparklineOneBlockPerValue(t *testing.T) {
	result := RenderSparkline([]float64{0, 25, 50, 75, 100}, 10)
	assert.Equal(t, 5, len([]rune(stripANSI(result))))
}

func TestRenderSparklineTruncatesToWidth(t *testing.T) {
	data := []float64{10, 20, 30, 40, 50, 60, 70, 80, 90, 100}
	result := RenderSparkline(data, 5)
	assert.Equal(t, 5, len([]rune(stripANSI(result))))
}

func TestRenderSparklineBoundaries(t *testing.T) {
	runes := []rune(stripANSI(RenderSparkline([]float64{0, 50, 100}, 10)))
	assert.Equal(t, '▁', runes[0], "minimum maps to lowest block")
	assert.Equal(t, '█', runes[2], "maximum maps to highest block")
}

func TestRenderSparklineFlatSeries(t *testing.T) {
	stripped := stripANSI(RenderSparkline([]float64{50, 50, 50}, 10))
	assert.Equal(t, strings.Repeat("▅", 3), stripped)
}

func TestSparklineBlocksAscending(t *testing.T) {
	assert.Equal(t, "▁▂▃▄▅▆▇█", sparklineBlocks)
}

func TestThresholdColor(t *testing.T) {
	tests := []struct {
		percent  float64
		expected string
	}{
		{0, string(ColorSuccess)},
		{69.9, string(ColorSuccess)},
		{70, string(ColorWarning)},
		{89.9, string(ColorWarning)},
		{90, string(ColorError)},
		{100, string(ColorError)},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, string(thresholdColor(tt.percent)), "percent %.1f", tt.percent)
	}
}

func stripANSI(s string) string {
	var result strings.Builder
	inEscape := false
	for _, r := range s {
		if r == '\033' {
			inEscape = true
			continue
		}
		if inEscape {
			if r == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteRune(r)
	}
	return result.String()
}
