// Package probe reads raw host resource counters and turns them into
// the metric values the dashboard displays.
//
// The package is organized around a single Sampler interface with one
// concrete implementation per platform, selected at build time:
//
//   - Linux reads the /proc pseudo-files (stat, meminfo, loadavg,
//     uptime) and counts numeric /proc entries for the task total.
//   - Windows queries the kernel32/psapi APIs (GetSystemTimes,
//     GlobalMemoryStatusEx, EnumProcesses, GetTickCount64) through
//     golang.org/x/sys/windows.
//   - Every other platform gets a stub whose CPU probe fails and whose
//     remaining probes report themselves unavailable.
//
// # Error tiers
//
// SampleCPU is the only probe that returns an error: without tick
// counters there is no usage percentage to derive, so callers treat it
// as fatal. All other probes degrade instead of failing — they return
// a result with Valid=false and the dashboard renders a placeholder.
// A result is either fully valid or flagged invalid; partial numeric
// fields are never presented as valid.
//
// # CPU usage derivation
//
// A CPUSnapshot is meaningless alone. UsagePercent takes two snapshots
// from the same sampler, chronologically ordered, and derives the busy
// percentage from the tick deltas. Counter resets and reversed inputs
// are reported as 0 rather than trusted to wraparound arithmetic.
//
// The parsing helpers operate on strings, readers, and directory paths
// so they are unit-testable on any platform without touching /proc.
package probe
