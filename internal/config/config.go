package config

import "time"

// Config represents the application configuration
type Config struct {
	Download DownloadConfig `mapstructure:"download"`
	Logging  LoggingConfig  `mapstructure:"logging"`
	Quiet    bool           `mapstructure:"quiet"`
}

// DownloadConfig contains archive download settings
type DownloadConfig struct {
	Repo    string        `mapstructure:"repo"`
	Branch  string        `mapstructure:"branch"`
	Timeout time.Duration `mapstructure:"timeout"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

// Validate validates the configuration and applies defaults for
// invalid values
func (c *Config) Validate() error {
	if c.Download.Repo == "" {
		c.Download.Repo = DefaultRepo
	}
	if c.Download.Branch == "" {
		c.Download.Branch = DefaultBranch
	}
	if c.Download.Timeout < time.Second {
		c.Download.Timeout = DefaultTimeout
	}
	if c.Logging.Level == "" {
		c.Logging.Level = DefaultLogLevel
	}
	return nil
}
