// Package format converts raw sampler results into the strings the
// dashboard displays. All functions are pure: no I/O, no failure modes.
package format

import (
	"fmt"
	"time"
)

const (
	secondsPerMinute = 60
	secondsPerHour   = 3600
	secondsPerDay    = 86400

	bytesPerMiB = 1024 * 1024
)

// Duration renders an uptime the way top(1) does. Under a minute it is
// "<n>s"; beyond that, days (when nonzero, pluralized past one) then
// zero-padded hours and minutes. Leftover seconds are truncated.
//
//	59     -> "59s"
//	90000  -> "1 day, 01:00"
//	176400 -> "2 days, 01:00"
func Duration(seconds uint64) string {
	if seconds < secondsPerMinute {
		return fmt.Sprintf("%ds", seconds)
	}

	days := seconds / secondsPerDay
	seconds %= secondsPerDay
	hours := seconds / secondsPerHour
	seconds %= secondsPerHour
	minutes := seconds / secondsPerMinute

	if days == 0 {
		return fmt.Sprintf("%02d:%02d", hours, minutes)
	}
	unit := "day"
	if days > 1 {
		unit = "days"
	}
	return fmt.Sprintf("%d %s, %02d:%02d", days, unit, hours, minutes)
}

// MiB renders a byte count as mebibytes with exactly one fractional
// digit, matching top's "MiB Mem" row.
func MiB(bytes uint64) string {
	return fmt.Sprintf("%.1f", float64(bytes)/bytesPerMiB)
}

// Clock renders local wall-clock time as zero-padded HH:MM:SS.
func Clock(t time.Time) string {
	return t.Local().Format("15:04:05")
}

// Percent1 renders a percentage with one fractional digit.
func Percent1(v float64) string {
	return fmt.Sprintf("%.1f", v)
}

// Load2 renders a load average with two fractional digits.
func Load2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}
