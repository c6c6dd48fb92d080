package probe

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// cpuFieldCount is the number of tick fields on the aggregate cpu line:
// user, nice, system, idle, iowait, irq, softirq, steal, guest,
// guest_nice. Older kernels report fewer; missing fields count as zero.
const cpuFieldCount = 10

// parseCPULine parses the aggregate "cpu" line from /proc/stat into a
// snapshot. The leading token must be exactly "cpu" (not "cpu0").
// Total is the sum of all tick fields; idle is idle + iowait.
func parseCPULine(line string) (CPUSnapshot, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || fields[0] != "cpu" {
		return CPUSnapshot{}, fmt.Errorf("expected aggregate cpu line, got %q", line)
	}

	var values [cpuFieldCount]uint64
	for i := 0; i < cpuFieldCount && i+1 < len(fields); i++ {
		v, err := strconv.ParseUint(fields[i+1], 10, 64)
		if err != nil {
			// Stop at the first malformed field; the rest stay zero.
			break
		}
		values[i] = v
	}

	var total uint64
	for _, v := range values {
		total += v
	}

	return CPUSnapshot{
		IdleTicks:  values[3] + values[4],
		TotalTicks: total,
	}, nil
}

// parseMeminfo scans /proc/meminfo-style key/value/unit triples for
// MemTotal and MemAvailable. Values are reported in kilobytes.
//
// Valid requires only MemTotal: a kernel too old to report
// MemAvailable still yields a valid result with AvailableBytes 0.
func parseMeminfo(r io.Reader) MemoryStatus {
	var status MemoryStatus
	var total, available uint64

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}

		key := strings.TrimSuffix(fields[0], ":")
		if key != "MemTotal" && key != "MemAvailable" {
			continue
		}

		v, err := strconv.ParseUint(fields[1], 10, 64)
		if err != nil {
			continue
		}

		switch key {
		case "MemTotal":
			total = v * 1024
		case "MemAvailable":
			available = v * 1024
		}
		if total > 0 && available > 0 {
			break
		}
	}

	if total > 0 {
		status.TotalBytes = total
		status.AvailableBytes = available
		status.Valid = true
	}
	return status
}

// countNumericEntries counts the directory entries under dir whose
// names are entirely decimal digits — on Linux, the per-process
// directories of /proc. Non-numeric entries like "self" or "net" are
// ignored. Any traversal error yields an invalid summary.
func countNumericEntries(dir string) TaskSummary {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return TaskSummary{}
	}

	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if isAllDigits(entry.Name()) {
			count++
		}
	}
	return TaskSummary{Total: count, Valid: true}
}

func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// parseLoadAvg parses the first three fields of /proc/loadavg. The
// result is valid only when all three averages parse.
func parseLoadAvg(s string) LoadAverages {
	fields := strings.Fields(s)
	if len(fields) < 3 {
		return LoadAverages{}
	}

	var loads [3]float64
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return LoadAverages{}
		}
		loads[i] = v
	}

	return LoadAverages{One: loads[0], Five: loads[1], Fifteen: loads[2], Valid: true}
}

// parseUptime parses the first field of /proc/uptime (elapsed seconds
// as a float) and truncates it to whole seconds.
func parseUptime(s string) Uptime {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return Uptime{}
	}

	v, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || v < 0 {
		return Uptime{}
	}
	return Uptime{Seconds: uint64(v), Valid: true}
}
