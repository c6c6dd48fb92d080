package dashboard

import (
	"fmt"
	"strings"

	"github.com/rileyhilliard/ttop/internal/format"
)

// Placeholder rendered for metrics whose probe reported itself invalid.
const unavailable = "N/A"

// SummaryLines renders the classic top(1) header block as unstyled
// text. Both the TUI view and the plain renderer build on these lines
// so the two outputs never drift apart.
//
//	top - 14:03:27 up 2 days, 01:14,  load average: 0.52, 0.58, 0.59
//	Tasks: 213 total, 1 running, 0 sleeping, 0 stopped, 0 zombie
//	%Cpu(s): 12.3 us, 87.7 id
//	MiB Mem : 15889.3 total, 9304.1 used, 6585.2 free
func SummaryLines(st Stats) []string {
	return []string{
		headerLine(st),
		tasksLine(st),
		cpuLine(st),
		memLine(st),
	}
}

func headerLine(st Stats) string {
	var b strings.Builder
	b.WriteString("top - ")
	b.WriteString(format.Clock(st.Timestamp))
	b.WriteString(" up ")
	if st.Uptime.Valid {
		b.WriteString(format.Duration(st.Uptime.Seconds))
	} else {
		b.WriteString(unavailable)
	}
	b.WriteString(",  load average: ")
	if st.Load.Valid {
		b.WriteString(format.Load2(st.Load.One))
		b.WriteString(", ")
		b.WriteString(format.Load2(st.Load.Five))
		b.WriteString(", ")
		b.WriteString(format.Load2(st.Load.Fifteen))
	} else {
		b.WriteString("N/A, N/A, N/A")
	}
	return b.String()
}

func tasksLine(st Stats) string {
	if !st.Tasks.Valid {
		return "Tasks: " + unavailable
	}
	return fmt.Sprintf("Tasks: %d total, 1 running, 0 sleeping, 0 stopped, 0 zombie", st.Tasks.Total)
}

func cpuLine(st Stats) string {
	return fmt.Sprintf("%%Cpu(s): %s us, %s id",
		format.Percent1(st.CPUPercent),
		format.Percent1(100.0-st.CPUPercent))
}

func memLine(st Stats) string {
	if !st.Memory.Valid {
		return "MiB Mem : " + unavailable
	}
	return fmt.Sprintf("MiB Mem : %s total, %s used, %s free",
		format.MiB(st.Memory.TotalBytes),
		format.MiB(st.MemUsedBytes()),
		format.MiB(st.Memory.AvailableBytes))
}
