// Package config loads and validates the chirpbench TOML configuration: the
// test message, the protocol and SNR sweeps, trial parallelism, artifact
// persistence, and logging. Loading never requires a file to exist; absent
// files yield the repository defaults.
package config
