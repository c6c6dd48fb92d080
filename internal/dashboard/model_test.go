package dashboard

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/rileyhilliard/ttop/internal/errors"
	"github.com/rileyhilliard/ttop/internal/probe"
)

func TestModelPrimesBeforeShowingStats(t *testing.T) {
	m := NewModel(&fakeSampler{})

	// First cycle only primes the delta baseline.
	updated, cmd := m.Update(statsMsg{stats: Stats{CPU: probe.CPUSnapshot{IdleTicks: 10, TotalTicks: 100}}})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.False(t, m.hasStats)
	assert.Equal(t, uint64(100), m.prev.TotalTicks)

	// Second cycle carries a real delta and is displayed.
	updated, _ = m.Update(statsMsg{stats: Stats{CPU: probe.CPUSnapshot{IdleTicks: 20, TotalTicks: 200}, CPUPercent: 50}})
	m = updated.(Model)
	assert.True(t, m.hasStats)
	assert.Equal(t, 1, m.history.Count())
}

func TestModelFatalCPUError(t *testing.T) {
	m := NewModel(&fakeSampler{})
	cause := errors.New("read /proc/stat: input/output error")

	updated, cmd := m.Update(statsMsg{err: cause})
	m = updated.(Model)

	require.NotNil(t, cmd)
	require.Error(t, m.Err())
	assert.ErrorIs(t, m.Err(), cause)

	var appErr *apperrors.Error
	require.ErrorAs(t, m.Err(), &appErr)
	assert.Equal(t, apperrors.ErrProbe, appErr.Code)
}

func TestModelKeys(t *testing.T) {
	m := NewModel(&fakeSampler{})
	assert.True(t, m.showGraph)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'g'}})
	m = updated.(Model)
	assert.False(t, m.showGraph)

	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	m = updated.(Model)
	require.NotNil(t, cmd)
	assert.True(t, m.quitting)
	assert.Equal(t, "", m.View())
}

func TestModelViewBeforeFirstSample(t *testing.T) {
	m := NewModel(&fakeSampler{})
	assert.Contains(t, m.View(), "Sampling...")
}
