package dashboard

import (
	"strings"

	"github.com/rileyhilliard/ttop/internal/ui"
)

// graphWidth is the default sparkline width when the terminal size is
// not known yet.
const graphWidth = 60

// renderDashboard renders the complete dashboard view.
func (m Model) renderDashboard() string {
	var b strings.Builder

	b.WriteString(TitleStyle.Render("ttop"))
	b.WriteString("\n\n")

	if !m.hasStats {
		b.WriteString(m.spinner.View())
		b.WriteString(" ")
		b.WriteString(LabelStyle.Render("Sampling..."))
		b.WriteString("\n")
		return b.String()
	}

	for _, line := range m.renderSummary() {
		b.WriteString(line)
		b.WriteString("\n")
	}

	if m.showGraph {
		b.WriteString("\n")
		b.WriteString(m.renderGraphs())
	}

	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// renderSummary styles the shared summary lines: labels in the
// secondary color, the CPU percentage colored by severity, N/A values
// muted.
func (m Model) renderSummary() []string {
	lines := SummaryLines(m.stats)
	styled := make([]string, 0, len(lines))

	for _, line := range lines {
		label, rest, ok := splitLabel(line)
		if !ok {
			styled = append(styled, ValueStyle.Render(line))
			continue
		}

		var value string
		switch {
		case strings.HasPrefix(label, "%Cpu"):
			value = severityStyle(m.stats.CPUPercent).Render(rest)
		case strings.TrimSpace(rest) == unavailable:
			value = UnavailableStyle.Render(rest)
		default:
			value = ValueStyle.Render(rest)
		}
		styled = append(styled, LabelStyle.Render(label)+value)
	}

	return styled
}

// splitLabel separates the fixed label prefix from a summary line.
func splitLabel(line string) (label, rest string, ok bool) {
	for _, prefix := range []string{"top - ", "Tasks: ", "%Cpu(s): ", "MiB Mem : "} {
		if strings.HasPrefix(line, prefix) {
			return prefix, line[len(prefix):], true
		}
	}
	return "", "", false
}

// renderGraphs renders the CPU and memory sparklines over the last
// minute of samples.
func (m Model) renderGraphs() string {
	width := graphWidth
	if m.width > 0 && m.width-10 < width {
		width = m.width - 10
	}
	if width < 10 {
		return ""
	}

	var b strings.Builder
	if cpu := m.history.CPU(width); len(cpu) > 0 {
		b.WriteString(LabelStyle.Render("cpu "))
		b.WriteString(ui.RenderSparkline(cpu, width))
		b.WriteString("\n")
	}
	if mem := m.history.Mem(width); len(mem) > 0 {
		b.WriteString(LabelStyle.Render("mem "))
		b.WriteString(ui.RenderSparkline(mem, width))
		b.WriteString("\n")
	}
	return b.String()
}

// renderFooter renders the keyboard help footer.
func (m Model) renderFooter() string {
	hints := []string{
		"q quit",
		"g graphs",
	}
	return FooterStyle.Render(strings.Join(hints, "  ·  "))
}
