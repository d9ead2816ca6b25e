package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds the options for a batch run. It is read once at process
// start and passed to initializers explicitly; nothing else in the
// program touches the environment.
type Config struct {
	DownloadDir string `mapstructure:"download_dir"`
	Concurrency int    `mapstructure:"concurrency"`
	LogLevel    string `mapstructure:"log_level"`
	UserAgent   string `mapstructure:"user_agent"`
}

// Load builds the configuration from BATCHDL_* environment variables,
// falling back to defaults. There is no configuration file.
func Load() (*Config, error) {
	v := viper.New()

	v.SetDefault("download_dir", defaultDownloadDir())
	v.SetDefault("concurrency", defaultConcurrency)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("user_agent", defaultUserAgent)

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Concurrency <= 0 {
		return fmt.Errorf("concurrency must be positive, got %d", c.Concurrency)
	}

	if c.DownloadDir == "" {
		return fmt.Errorf("download directory must not be empty")
	}

	return nil
}
