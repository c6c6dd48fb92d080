// Package ui provides the shared terminal styling primitives for the
// dashboard: the ANSI color palette, status symbols, the sampling
// spinner, and sparkline rendering.
//
// # Color Scheme
//
// Colors are defined as ANSI codes for broad terminal compatibility:
//
//	ColorSuccess   (green)  - Healthy metrics
//	ColorError     (red)    - Failures and saturated metrics
//	ColorWarning   (yellow) - Elevated metrics
//	ColorInfo      (cyan)   - Titles and informational text
//	ColorMuted     (gray)   - Secondary text, unavailable values
//	ColorSecondary (blue)   - Labels and in-progress indicators
//
// Use DisableColors() to switch to monochrome output (for --no-color flag).
//
// # Sparklines
//
// RenderSparkline draws recent percentage history with block characters:
//
//	ui.RenderSparkline(history, 60)  // ▁▂▃▅▇█▇▅
//
// The row is colored by the latest value: green below 70%, yellow from
// 70%, red from 90%.
package ui
