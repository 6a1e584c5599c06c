package config

import "fmt"

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Paths.ContentDir == "" {
		return fmt.Errorf("paths.content_dir must be set")
	}
	if c.Paths.OutputDir == "" {
		return fmt.Errorf("paths.output_dir must be set")
	}
	if c.Paths.OutputDir == c.Paths.ContentDir {
		return fmt.Errorf("paths.output_dir must differ from paths.content_dir")
	}

	if c.Build.YearStart < 1900 || c.Build.YearStart > 2100 {
		return fmt.Errorf("build.year_start %d out of range", c.Build.YearStart)
	}
	if c.Build.YearEnd < c.Build.YearStart {
		return fmt.Errorf("build.year_end %d before build.year_start %d", c.Build.YearEnd, c.Build.YearStart)
	}

	if c.Photos.Enabled {
		if c.Photos.BaseURL == "" {
			return fmt.Errorf("photos.base_url must be set when photos are enabled")
		}
		if c.Photos.APIKey == "" {
			return fmt.Errorf("photos.api_key must be set when photos are enabled")
		}
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format must be console or json, got %q", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level must be debug, info, warn, or error, got %q", c.Logging.Level)
	}

	return nil
}
