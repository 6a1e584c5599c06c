package config

const (
	defaultContentDir   = "content"
	defaultOutputDir    = "dist"
	defaultLogDir       = "~/.local/share/callboard/logs"
	defaultDatabasePath = ":memory:"

	defaultYearStart = 1940
	defaultBranch    = "master"

	defaultPhotoCacheDir = "~/.cache/callboard/photos"

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a configuration populated with default values.
func Default() Config {
	return Config{
		Paths: Paths{
			ContentDir:   defaultContentDir,
			OutputDir:    defaultOutputDir,
			LogDir:       defaultLogDir,
			DatabasePath: defaultDatabasePath,
		},
		Build: Build{
			YearStart: defaultYearStart,
			Branch:    defaultBranch,
		},
		Photos: Photos{
			CacheDir: defaultPhotoCacheDir,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
