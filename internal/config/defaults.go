package config

import "time"

// Default values
const (
	// Download defaults
	DefaultRepo    = "sri-geospace/atmosense-abcgan"
	DefaultBranch  = "main"
	DefaultTimeout = 5 * time.Second

	// Logging defaults
	DefaultLogLevel = "info"
)

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Download: DownloadConfig{
			Repo:    DefaultRepo,
			Branch:  DefaultBranch,
			Timeout: DefaultTimeout,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Quiet: false,
	}
}
