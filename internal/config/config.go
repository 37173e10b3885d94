// Package config holds runtime configuration for the bodygraph CLI.
package config

import "github.com/spf13/viper"

// Config holds all runtime configuration for a bodygraph invocation.
// Values are populated from .bodygraph.yaml, BODYGRAPH_* env vars, and CLI
// flags.
type Config struct {
	Language   string `mapstructure:"language"`
	DataDir    string `mapstructure:"data_dir"`
	StorePath  string `mapstructure:"store_path"`
	Format     string `mapstructure:"format"`
	Workers    int    `mapstructure:"workers"`
	SaveCharts bool   `mapstructure:"save_charts"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("language", "en")
	viper.SetDefault("data_dir", "")
	viper.SetDefault("store_path", ".bodygraph.db")
	viper.SetDefault("format", "text")
	viper.SetDefault("workers", 4)
	viper.SetDefault("save_charts", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
