package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration can drive a sweep. These are the
// whole-run configuration errors that abort before any trial executes.
func (c *Config) Validate() error {
	if err := c.validateSweep(); err != nil {
		return err
	}
	if err := c.validateArtifacts(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateSweep() error {
	if c.Sweep.Message == "" {
		return errors.New("sweep.message must not be empty")
	}
	if len(c.Sweep.Protocols) == 0 {
		return errors.New("sweep.protocols must list at least one protocol")
	}
	if len(c.Sweep.SNRLevels) == 0 {
		return errors.New("sweep.snr_levels must list at least one level")
	}
	if c.Sweep.TrialsPerCell < 1 {
		return fmt.Errorf("sweep.trials_per_cell must be positive, got %d", c.Sweep.TrialsPerCell)
	}
	if c.Sweep.Workers < 0 {
		return fmt.Errorf("sweep.workers must not be negative, got %d", c.Sweep.Workers)
	}
	if c.Sweep.Volume < 0 || c.Sweep.Volume > 1 {
		return fmt.Errorf("sweep.volume must lie in [0, 1], got %v", c.Sweep.Volume)
	}
	return nil
}

func (c *Config) validateArtifacts() error {
	if c.Artifacts.Enabled && c.Artifacts.Dir == "" {
		return errors.New("artifacts.dir must be set when artifacts.enabled is true")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("logging.level %q is not recognized", c.Logging.Level)
	}
	return nil
}
