package dashboard

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rileyhilliard/ttop/internal/probe"
	"github.com/rileyhilliard/ttop/internal/ui"
)

// Key bindings as constants for consistency.
const (
	KeyQuit        = "q"
	KeyQuitAlt     = "ctrl+c"
	KeyToggleGraph = "g"
)

// Model is the Bubble Tea model for the dashboard. It owns the
// previous CPU snapshot exclusively; each cycle copies it by value
// into the sampling command.
type Model struct {
	sampler probe.Sampler
	prev    probe.CPUSnapshot
	primed  bool // a first snapshot exists, so CPU deltas are meaningful

	stats    Stats
	hasStats bool
	history  *History
	spinner  ui.Spinner

	showGraph bool
	width     int
	height    int
	quitting  bool
	err       error
}

// tickMsg signals the start of the next sampling cycle.
type tickMsg time.Time

// statsMsg carries one cycle's results, or the fatal CPU probe error.
type statsMsg struct {
	stats Stats
	err   error
}

// NewModel creates a dashboard model backed by the given sampler.
func NewModel(sampler probe.Sampler) Model {
	return Model{
		sampler:   sampler,
		history:   NewHistory(DefaultHistorySize),
		spinner:   ui.NewSpinner(),
		showGraph: true,
	}
}

// Err returns the fatal sampling error that ended the program, if any.
// The CLI inspects this after the Bubble Tea program exits so it can
// report the failure and set a non-zero exit status.
func (m Model) Err() error {
	return m.err
}

// Init takes the first CPU snapshot immediately so the second cycle
// has a delta to work with.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.collectCmd(), m.spinner.Tick())
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case KeyQuit, KeyQuitAlt:
			m.quitting = true
			return m, tea.Quit
		case KeyToggleGraph:
			m.showGraph = !m.showGraph
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case tickMsg:
		return m, m.collectCmd()

	case statsMsg:
		if msg.err != nil {
			// CPU counters are gone; there is nothing left to show.
			m.err = wrapCPUError(msg.err)
			m.quitting = true
			return m, tea.Quit
		}

		m.stats = msg.stats
		m.prev = msg.stats.CPU
		if m.primed {
			m.hasStats = true
			m.history.Push(msg.stats)
		}
		m.primed = true
		return m, m.tickCmd()

	default:
		// Spinner animation while waiting for the first delta.
		if !m.hasStats {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

// View renders the dashboard.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return m.renderDashboard()
}

// tickCmd schedules the next cycle at the fixed cadence.
func (m Model) tickCmd() tea.Cmd {
	return tea.Tick(Interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// collectCmd runs one sampling cycle off the UI goroutine.
func (m Model) collectCmd() tea.Cmd {
	sampler, prev := m.sampler, m.prev
	return func() tea.Msg {
		stats, err := Collect(sampler, prev)
		return statsMsg{stats: stats, err: err}
	}
}
