// Package config provides Viper-based configuration management for lc0ctl
package config

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/lc0-tools/lc0ctl/internal/schedule"
)

// Config represents the complete lc0ctl configuration
type Config struct {
	URLs    URLsConfig    `mapstructure:"urls"`
	Inspect InspectConfig `mapstructure:"inspect"`
	Logging LoggingConfig `mapstructure:"logging"`
	Output  OutputConfig  `mapstructure:"output"`
}

// URLsConfig contains settings for URL generation
type URLsConfig struct {
	// Template must contain {date} and {hour} placeholders.
	Template string `mapstructure:"template"`
}

// InspectConfig contains settings for archive inspection
type InspectConfig struct {
	// Limit caps the records decoded per archive; 0 reads everything.
	Limit int `mapstructure:"limit"`
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// OutputConfig contains output formatting settings
type OutputConfig struct {
	Colors bool `mapstructure:"colors"`
}

// Load reads configuration from file and environment variables
func Load(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		// Search paths for .lc0ctl.yaml
		v.SetConfigName(".lc0ctl")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/lc0ctl")
	}

	// Environment variables
	v.SetEnvPrefix("LC0CTL")
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("reading config: %w", err)
		}
		// Config file not found is OK, use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshaling config: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return &cfg, nil
}

// setDefaults configures default values
func setDefaults(v *viper.Viper) {
	v.SetDefault("urls.template", schedule.DefaultTemplate)
	v.SetDefault("inspect.limit", 0)

	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "text")

	v.SetDefault("output.colors", true)
}

// validate checks the configuration for errors
func validate(cfg *Config) error {
	// A bad template override should fail here, not halfway through a run
	if _, err := schedule.ParseTemplate(cfg.URLs.Template); err != nil {
		return fmt.Errorf("invalid urls.template: %w", err)
	}

	if cfg.Inspect.Limit < 0 {
		return fmt.Errorf("invalid inspect.limit: %d (must not be negative)", cfg.Inspect.Limit)
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[cfg.Logging.Level] {
		return fmt.Errorf("invalid logging level: %s (must be debug, info, warn, or error)", cfg.Logging.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[cfg.Logging.Format] {
		return fmt.Errorf("invalid logging format: %s (must be text or json)", cfg.Logging.Format)
	}

	return nil
}
