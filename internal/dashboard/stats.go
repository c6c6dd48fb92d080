package dashboard

import (
	"time"

	"github.com/rileyhilliard/ttop/internal/probe"
)

// Interval is the fixed cadence of the sampling loop.
const Interval = time.Second

// Stats holds everything one sampling cycle produced.
type Stats struct {
	Timestamp  time.Time
	CPU        probe.CPUSnapshot // snapshot behind CPUPercent; feeds the next cycle
	CPUPercent float64
	Memory     probe.MemoryStatus
	Tasks      probe.TaskSummary
	Load       probe.LoadAverages
	Uptime     probe.Uptime
}

// Collect runs every probe once and derives the CPU percentage against
// prev. A CPU sampling error is returned as-is and is fatal to the
// loop; all other probes degrade into invalid results inside Stats.
func Collect(s probe.Sampler, prev probe.CPUSnapshot) (Stats, error) {
	curr, err := s.SampleCPU()
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Timestamp:  time.Now(),
		CPU:        curr,
		CPUPercent: probe.UsagePercent(prev, curr),
		Memory:     s.SampleMemory(),
		Tasks:      s.SampleTasks(),
		Load:       s.SampleLoad(),
		Uptime:     s.SampleUptime(),
	}, nil
}

// MemUsedBytes returns total minus available, clamped at zero. Only
// meaningful when Memory.Valid is true.
func (st Stats) MemUsedBytes() uint64 {
	if st.Memory.TotalBytes > st.Memory.AvailableBytes {
		return st.Memory.TotalBytes - st.Memory.AvailableBytes
	}
	return 0
}

// MemPercent returns used memory as a percentage of total, or 0 when
// memory state is unavailable.
func (st Stats) MemPercent() float64 {
	if !st.Memory.Valid || st.Memory.TotalBytes == 0 {
		return 0
	}
	return float64(st.MemUsedBytes()) / float64(st.Memory.TotalBytes) * 100
}
