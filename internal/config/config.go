package config

import (
	"fmt"

	"github.com/spf13/viper"
)

// Config holds all runtime configuration for a loadout session.
// Values are populated from .loadout.yaml, LOADOUT_* env vars, and CLI flags.
type Config struct {
	CatalogDir    string `mapstructure:"catalog_dir"`
	SelectionFile string `mapstructure:"selection_file"`
	ExpertMode    bool   `mapstructure:"expert_mode"`
	Verbose       bool   `mapstructure:"verbose"`
	LogFormat     string `mapstructure:"log_format"` // "console" or "json"
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("catalog_dir", "skills")
	viper.SetDefault("selection_file", "loadout.toml")
	viper.SetDefault("expert_mode", false)
	viper.SetDefault("verbose", false)
	viper.SetDefault("log_format", "console")

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}
	switch cfg.LogFormat {
	case "console", "json":
	default:
		return Config{}, fmt.Errorf("log_format must be \"console\" or \"json\", got %q", cfg.LogFormat)
	}
	return cfg, nil
}
