// Package dashboard drives the sampling loop and renders the top-style
// display.
//
// One Collect call runs every probe sequentially and derives the CPU
// percentage from the previous cycle's snapshot. The snapshot is the
// only state carried between cycles and it is copied by value, so no
// locking is needed.
//
// Two renderers consume the same Stats: a Bubble Tea model with a
// fixed one-second tick, and a plain fallback that clears the screen
// and reprints for dumb terminals and piped output. Both render an
// explicit "N/A" for any metric whose probe reported itself invalid —
// a degraded probe never shows a stale or zero value as real.
package dashboard
