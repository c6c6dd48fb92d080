//go:build windows

package probe

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/rileyhilliard/ttop/internal/logger"
)

// Bounds for the EnumProcesses doubling buffer. The API gives no
// direct "needed size" signal; a full buffer means retry larger, and
// the cap keeps a pathological response from growing memory forever.
const (
	enumInitialSlots = 1024
	enumMaxSlots     = 1 << 20
)

type windowsSampler struct {
	log logger.Logger
}

func newPlatformSampler() Sampler {
	return &windowsSampler{log: logger.NewEnvLogger("[probe]")}
}

// filetimeTicks converts a FILETIME into its raw 64-bit tick value.
func filetimeTicks(ft windows.Filetime) uint64 {
	return uint64(ft.HighDateTime)<<32 | uint64(ft.LowDateTime)
}

// SampleCPU queries the system idle/kernel/user time accounting.
// Kernel time includes idle time, so total is kernel + user.
func (s *windowsSampler) SampleCPU() (CPUSnapshot, error) {
	var idle, kernel, user windows.Filetime
	if err := windows.GetSystemTimes(&idle, &kernel, &user); err != nil {
		return CPUSnapshot{}, fmt.Errorf("GetSystemTimes: %w", err)
	}

	return CPUSnapshot{
		IdleTicks:  filetimeTicks(idle),
		TotalTicks: filetimeTicks(kernel) + filetimeTicks(user),
	}, nil
}

// SampleMemory queries the global memory status.
func (s *windowsSampler) SampleMemory() MemoryStatus {
	var info windows.MemoryStatusEx
	info.Length = uint32(unsafe.Sizeof(info))
	if err := windows.GlobalMemoryStatusEx(&info); err != nil {
		s.log.Debug("GlobalMemoryStatusEx: %v", err)
		return MemoryStatus{}
	}

	return MemoryStatus{
		TotalBytes:     info.TotalPhys,
		AvailableBytes: info.AvailPhys,
		Valid:          true,
	}
}

// SampleTasks enumerates process identifiers into a growable buffer.
// A returned byte count that fills the buffer means the listing may be
// truncated, so the buffer doubles and the call retries up to the cap.
func (s *windowsSampler) SampleTasks() TaskSummary {
	const idSize = uint32(unsafe.Sizeof(uint32(0)))

	pids := make([]uint32, enumInitialSlots)
	for {
		var bytesReturned uint32
		if err := windows.EnumProcesses(pids, &bytesReturned); err != nil {
			s.log.Debug("EnumProcesses: %v", err)
			return TaskSummary{}
		}

		count := int(bytesReturned / idSize)
		if count < len(pids) {
			return TaskSummary{Total: count, Valid: true}
		}
		if len(pids) >= enumMaxSlots {
			s.log.Debug("EnumProcesses buffer cap reached at %d slots", len(pids))
			return TaskSummary{}
		}
		pids = make([]uint32, len(pids)*2)
	}
}

// SampleLoad always reports unavailable: Windows has no kernel-exposed
// load average.
func (s *windowsSampler) SampleLoad() LoadAverages {
	return LoadAverages{}
}

// SampleUptime reads the millisecond tick counter since boot.
func (s *windowsSampler) SampleUptime() Uptime {
	return Uptime{Seconds: windows.GetTickCount64() / 1000, Valid: true}
}
