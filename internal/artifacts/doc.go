// Package artifacts persists corrupted trial waveforms for manual
// inspection. Each sweep run gets its own directory containing one WAV file
// per trial plus a SQLite manifest mapping (protocol, SNR, trial) to the
// stored file and its verdict. Persistence is a read-only fan-out from the
// evaluator: a failed write never changes a verdict.
package artifacts
