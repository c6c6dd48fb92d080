//go:build !linux && !windows

package probe

import "errors"

// ErrUnsupportedPlatform is returned by SampleCPU on platforms without
// a tick-counter probe. CPU usage cannot be derived without one, so
// the sampling loop treats this as fatal.
var ErrUnsupportedPlatform = errors.New("cpu tick counters are not available on this platform")

// stubSampler is the fallback for platforms ttop has no probes for.
// Every metric reports itself unavailable.
type stubSampler struct{}

func newPlatformSampler() Sampler { return stubSampler{} }

func (stubSampler) SampleCPU() (CPUSnapshot, error) { return CPUSnapshot{}, ErrUnsupportedPlatform }
func (stubSampler) SampleMemory() MemoryStatus      { return MemoryStatus{} }
func (stubSampler) SampleTasks() TaskSummary        { return TaskSummary{} }
func (stubSampler) SampleLoad() LoadAverages        { return LoadAverages{} }
func (stubSampler) SampleUptime() Uptime            { return Uptime{} }
