// Package report turns a completed resilience matrix into renderable
// summaries: the SNR-by-protocol pass/fail grid, per-protocol statistics,
// and the clean-signal info block. Rendering itself (table styling, colors)
// belongs to the CLI; this package only shapes the data.
package report
