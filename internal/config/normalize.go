package config

import (
	"runtime"
	"strings"
	"time"
)

// normalize expands and cleans all configured paths and fills in
// derived values.
func (c *Config) normalize() error {
	var err error
	if c.Paths.ContentDir, err = expandPath(c.Paths.ContentDir); err != nil {
		return err
	}
	if c.Paths.OutputDir, err = expandPath(c.Paths.OutputDir); err != nil {
		return err
	}
	if c.Paths.LogDir, err = expandPath(c.Paths.LogDir); err != nil {
		return err
	}
	if c.Paths.DatabasePath != "" && c.Paths.DatabasePath != ":memory:" {
		if c.Paths.DatabasePath, err = expandPath(c.Paths.DatabasePath); err != nil {
			return err
		}
	}
	if c.Photos.CacheDir != "" {
		if c.Photos.CacheDir, err = expandPath(c.Photos.CacheDir); err != nil {
			return err
		}
	}

	if c.Paths.DatabasePath == "" {
		c.Paths.DatabasePath = ":memory:"
	}

	if c.Build.YearEnd == 0 {
		c.Build.YearEnd = time.Now().Year()
	}
	if c.Build.Workers <= 0 {
		c.Build.Workers = runtime.NumCPU()
	}

	c.Photos.BaseURL = strings.TrimRight(strings.TrimSpace(c.Photos.BaseURL), "/")
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))

	return nil
}
