package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SpinnerFrames defines the animation frames (◐ ◓ ◑ ◒) used while the
// dashboard waits for its first measurable sample.
var SpinnerFrames = spinner.Spinner{
	Frames: []string{"◐", "◓", "◑", "◒"},
	FPS:    time.Second / 10, // 100ms per frame
}

// Spinner wraps the Bubble Tea spinner component with the shared frames
// and palette, for composing into larger models.
type Spinner struct {
	model spinner.Model
}

// NewSpinner creates a spinner ready for embedding in a Bubble Tea model.
func NewSpinner() Spinner {
	sp := spinner.New()
	sp.Spinner = SpinnerFrames
	sp.Style = lipgloss.NewStyle().Foreground(ColorSecondary)
	return Spinner{model: sp}
}

// Tick returns the command that starts the animation.
func (s Spinner) Tick() tea.Cmd {
	return s.model.Tick
}

// Update advances the animation on spinner tick messages.
func (s Spinner) Update(msg tea.Msg) (Spinner, tea.Cmd) {
	if tick, ok := msg.(spinner.TickMsg); ok {
		var cmd tea.Cmd
		s.model, cmd = s.model.Update(tick)
		return s, cmd
	}
	return s, nil
}

// View renders the current frame.
func (s Spinner) View() string {
	return s.model.View()
}
