package probe

// UsagePercent derives the CPU utilization percentage from two ordered
// snapshots. The result is always in [0, 100] and never NaN or Inf.
//
// A zero total delta (first call, stalled clock) is defined as 0.
// So is a total or idle counter that moved backwards: that means the
// counters reset or the snapshots were reversed, and an explicit zero
// beats the huge bogus value unsigned wraparound would produce.
func UsagePercent(prev, curr CPUSnapshot) float64 {
	if curr.TotalTicks <= prev.TotalTicks || curr.IdleTicks < prev.IdleTicks {
		return 0.0
	}

	totalDelta := curr.TotalTicks - prev.TotalTicks
	idleDelta := curr.IdleTicks - prev.IdleTicks
	if idleDelta > totalDelta {
		// Idle advanced faster than total; counters are inconsistent.
		return 0.0
	}

	activeDelta := totalDelta - idleDelta
	return float64(activeDelta) * 100.0 / float64(totalDelta)
}
