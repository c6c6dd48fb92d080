package probe

// CPUSnapshot is a point-in-time read of the platform's cumulative CPU
// tick counters. Snapshots are only meaningful when compared against a
// chronologically later snapshot from the same sampler.
type CPUSnapshot struct {
	IdleTicks  uint64
	TotalTicks uint64
}

// MemoryStatus reports physical memory state. When Valid is false the
// byte counts are undefined and must not be displayed as numbers.
type MemoryStatus struct {
	TotalBytes     uint64
	AvailableBytes uint64
	Valid          bool
}

// TaskSummary reports the number of active processes. Valid is false
// when enumeration failed.
type TaskSummary struct {
	Total int
	Valid bool
}

// LoadAverages reports the 1/5/15-minute load averages. Valid is false
// on platforms without a kernel-exposed load average, or on read error.
type LoadAverages struct {
	One     float64
	Five    float64
	Fifteen float64
	Valid   bool
}

// Uptime reports elapsed seconds since boot. Valid distinguishes a
// read failure from a host that genuinely just booted.
type Uptime struct {
	Seconds uint64
	Valid   bool
}

// Sampler reads one platform's resource counters. Implementations are
// selected at build time; New returns the one for the current platform.
//
// SampleCPU failing is fatal to the sampling loop — there is no
// meaningful fallback for usage derivation. Every other probe degrades
// to an invalid result instead of returning an error, so one broken
// pseudo-file never takes down the rest of the dashboard.
type Sampler interface {
	SampleCPU() (CPUSnapshot, error)
	SampleMemory() MemoryStatus
	SampleTasks() TaskSummary
	SampleLoad() LoadAverages
	SampleUptime() Uptime
}

// New returns the Sampler for the platform this binary was built for.
func New() Sampler {
	return newPlatformSampler()
}
