package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	c.Sweep.Message = strings.TrimSpace(c.Sweep.Message)

	protocols := make([]string, 0, len(c.Sweep.Protocols))
	for _, p := range c.Sweep.Protocols {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			protocols = append(protocols, p)
		}
	}
	c.Sweep.Protocols = protocols

	if c.Sweep.TrialsPerCell == 0 {
		c.Sweep.TrialsPerCell = defaultTrialsPerCell
	}

	if strings.TrimSpace(c.Artifacts.Dir) == "" {
		c.Artifacts.Dir = defaultArtifactDir
	}
	var err error
	if c.Artifacts.Dir, err = ExpandPath(c.Artifacts.Dir); err != nil {
		return fmt.Errorf("artifacts.dir: %w", err)
	}

	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	return nil
}
