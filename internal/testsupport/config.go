package testsupport

import (
	"path/filepath"
	"testing"

	"callboard/internal/config"
)

// ConfigOption allows callers to customize the generated test configuration.
type ConfigOption func(*config.Config)

// NewConfig produces a config seeded with unique temp directories per
// test. It defaults common fields and applies any provided options.
func NewConfig(t testing.TB, opts ...ConfigOption) *config.Config {
	t.Helper()

	base := t.TempDir()
	cfg := config.Default()
	cfg.Paths.ContentDir = filepath.Join(base, "content")
	cfg.Paths.OutputDir = filepath.Join(base, "dist")
	cfg.Paths.LogDir = filepath.Join(base, "logs")
	cfg.Build.YearStart = 1999
	cfg.Build.YearEnd = 2001
	cfg.Build.Workers = 2

	for _, opt := range opts {
		opt(&cfg)
	}

	return &cfg
}

// WithYears overrides the academic year range on the test config.
func WithYears(start, end int) ConfigOption {
	return func(cfg *config.Config) {
		cfg.Build.YearStart = start
		cfg.Build.YearEnd = end
	}
}
