// Package sweep drives the round-trip evaluator across the full
// cross-product of protocols and SNR levels and collects the verdicts into a
// resilience matrix.
//
// Cells are independent by construction: workers receive self-contained jobs
// from a channel and a single collector goroutine performs insert-only writes
// into the matrix, so no trial's outcome can depend on another's.
package sweep
