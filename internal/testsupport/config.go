// Package testsupport provides helpers shared by package tests.
package testsupport

import (
	"path/filepath"
	"testing"

	"chirpbench/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with a unique temp artifact directory
// per test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	cfg := config.Default()
	cfg.Sweep.Message = "test message"
	cfg.Sweep.SNRLevels = []float64{40, 0}
	cfg.Artifacts.Dir = filepath.Join(t.TempDir(), "artifacts")

	for _, opt := range opts {
		opt(&cfg)
	}
	return &cfg
}

// WithMessage overrides the sweep message on the test config.
func WithMessage(message string) ConfigOption {
	return func(c *config.Config) {
		c.Sweep.Message = message
	}
}

// WithArtifacts enables waveform persistence on the test config.
func WithArtifacts() ConfigOption {
	return func(c *config.Config) {
		c.Artifacts.Enabled = true
	}
}

// WithSNRLevels overrides the SNR sweep on the test config.
func WithSNRLevels(levels ...float64) ConfigOption {
	return func(c *config.Config) {
		c.Sweep.SNRLevels = levels
	}
}
