package config

import "github.com/spf13/viper"

// Load loads configuration from defaults and bound CLI flags.
// Uses the global viper instance to access CLI flag bindings. The tool
// deliberately reads no config file and no environment variables; viper
// serves as the defaults and flag-binding layer only.
func Load() (*Config, error) {
	v := viper.GetViper()

	setDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// setDefaults sets default values in viper
func setDefaults(v *viper.Viper) {
	v.SetDefault("download.repo", DefaultRepo)
	v.SetDefault("download.branch", DefaultBranch)
	v.SetDefault("download.timeout", DefaultTimeout)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("quiet", false)
}
