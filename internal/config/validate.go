package config

import (
	"errors"
	"fmt"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateMatching(); err != nil {
		return err
	}
	return c.validateLogging()
}

func (c *Config) validateMatching() error {
	m := c.Matching
	if m.InsertThreshold <= 0 || m.InsertThreshold > 1 {
		return errors.New("matching.insert_threshold must be in (0, 1]")
	}
	if m.AutoMergeThreshold < 0 || m.AutoMergeThreshold > 1 {
		return errors.New("matching.auto_merge_threshold must be in [0, 1]")
	}
	if m.AutoMergeThreshold > 0 && m.AutoMergeThreshold < m.InsertThreshold {
		return errors.New("matching.auto_merge_threshold must not be below matching.insert_threshold")
	}
	if m.ReconcileThreshold < 0 || m.ReconcileThreshold > 1 {
		return errors.New("matching.reconcile_threshold must be in [0, 1]")
	}
	if m.MaxCandidates <= 0 {
		return errors.New("matching.max_candidates must be positive")
	}
	return nil
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}
