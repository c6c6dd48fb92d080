package dashboard

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rileyhilliard/ttop/internal/probe"
)

func sampleStats() Stats {
	return Stats{
		Timestamp:  time.Date(2025, 3, 14, 14, 3, 27, 0, time.Local),
		CPUPercent: 12.3,
		Memory: probe.MemoryStatus{
			TotalBytes:     17179869184, // 16384.0 MiB
			AvailableBytes: 6906445824,  // 6586.5 MiB
			Valid:          true,
		},
		Tasks:  probe.TaskSummary{Total: 213, Valid: true},
		Load:   probe.LoadAverages{One: 0.52, Five: 0.58, Fifteen: 0.59, Valid: true},
		Uptime: probe.Uptime{Seconds: 177240, Valid: true}, // 2 days, 01:14
	}
}

func TestSummaryLines(t *testing.T) {
	lines := SummaryLines(sampleStats())
	require.Len(t, lines, 4)

	assert.Equal(t, "top - 14:03:27 up 2 days, 01:14,  load average: 0.52, 0.58, 0.59", lines[0])
	assert.Equal(t, "Tasks: 213 total, 1 running, 0 sleeping, 0 stopped, 0 zombie", lines[1])
	assert.Equal(t, "%Cpu(s): 12.3 us, 87.7 id", lines[2])
	assert.Equal(t, "MiB Mem : 16384.0 total, 9797.5 used, 6586.5 free", lines[3])
}

func TestSummaryLinesDegraded(t *testing.T) {
	st := sampleStats()
	st.Memory.Valid = false
	st.Tasks.Valid = false
	st.Load.Valid = false
	st.Uptime.Valid = false

	lines := SummaryLines(st)
	require.Len(t, lines, 4)

	assert.Equal(t, "top - 14:03:27 up N/A,  load average: N/A, N/A, N/A", lines[0])
	assert.Equal(t, "Tasks: N/A", lines[1])
	assert.Equal(t, "%Cpu(s): 12.3 us, 87.7 id", lines[2])
	assert.Equal(t, "MiB Mem : N/A", lines[3])
}

func TestHeaderLineShortUptime(t *testing.T) {
	st := sampleStats()
	st.Uptime.Seconds = 59

	assert.Contains(t, headerLine(st), " up 59s,")
}
