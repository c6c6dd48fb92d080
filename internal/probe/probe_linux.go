//go:build linux

package probe

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rileyhilliard/ttop/internal/logger"
)

// linuxSampler reads the /proc pseudo-filesystem. The root is a field
// so tests can point it at a fixture directory.
type linuxSampler struct {
	procRoot string
	log      logger.Logger
}

func newPlatformSampler() Sampler {
	return &linuxSampler{
		procRoot: "/proc",
		log:      logger.NewEnvLogger("[probe]"),
	}
}

// SampleCPU reads the aggregate cpu line from /proc/stat.
func (s *linuxSampler) SampleCPU() (CPUSnapshot, error) {
	path := filepath.Join(s.procRoot, "stat")
	f, err := os.Open(path)
	if err != nil {
		return CPUSnapshot{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return CPUSnapshot{}, fmt.Errorf("read %s: %w", path, err)
		}
		return CPUSnapshot{}, fmt.Errorf("%s is empty", path)
	}

	return parseCPULine(scanner.Text())
}

// SampleMemory scans /proc/meminfo for MemTotal and MemAvailable.
func (s *linuxSampler) SampleMemory() MemoryStatus {
	f, err := os.Open(filepath.Join(s.procRoot, "meminfo"))
	if err != nil {
		s.log.Debug("meminfo unavailable: %v", err)
		return MemoryStatus{}
	}
	defer f.Close()

	return parseMeminfo(f)
}

// SampleTasks counts the numeric process-id directories under /proc.
func (s *linuxSampler) SampleTasks() TaskSummary {
	summary := countNumericEntries(s.procRoot)
	if !summary.Valid {
		s.log.Debug("process enumeration failed under %s", s.procRoot)
	}
	return summary
}

// SampleLoad reads the 1/5/15-minute averages from /proc/loadavg.
func (s *linuxSampler) SampleLoad() LoadAverages {
	data, err := os.ReadFile(filepath.Join(s.procRoot, "loadavg"))
	if err != nil {
		s.log.Debug("loadavg unavailable: %v", err)
		return LoadAverages{}
	}
	return parseLoadAvg(string(data))
}

// SampleUptime reads elapsed seconds since boot from /proc/uptime.
func (s *linuxSampler) SampleUptime() Uptime {
	data, err := os.ReadFile(filepath.Join(s.procRoot, "uptime"))
	if err != nil {
		s.log.Debug("uptime unavailable: %v", err)
		return Uptime{}
	}
	return parseUptime(string(data))
}
