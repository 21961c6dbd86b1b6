package testsupport

import (
	"path/filepath"
	"testing"

	"stylus/internal/config"
)

// NewConfig produces a config seeded with unique temp directories per test.
func NewConfig(t testing.TB) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.DatabaseDir = filepath.Join(base, "db")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	return &cfg
}
