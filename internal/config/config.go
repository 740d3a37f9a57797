// Package config loads runtime settings for mailstore via viper:
// defaults, then an optional config file, then MAILSTORE_* environment
// variables, each layer overriding the previous one.
package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds the complete mailstore configuration.
type Config struct {
	// StorePath is the path of the shared ledger file.
	StorePath string `mapstructure:"store_path"`

	Logging LoggingConfig `mapstructure:"logging"`
}

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is one of "debug", "info", "warn", "error" (default: "info").
	Level string `mapstructure:"level"`
	// Format is "text" or "json" (default: "text").
	Format string `mapstructure:"format"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		StorePath: "mail_store.json",
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// SetDefaults registers the default values with viper.
func SetDefaults() {
	defaults := Default()

	viper.SetDefault("store_path", defaults.StorePath)
	viper.SetDefault("logging.level", defaults.Logging.Level)
	viper.SetDefault("logging.format", defaults.Logging.Format)
}

// Load reads the configuration: defaults, then mailstore.yaml from the
// current directory or the user config directory, then MAILSTORE_*
// environment variables. A missing config file is not an error.
func Load() (*Config, error) {
	SetDefaults()

	viper.SetConfigName("mailstore")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath(ConfigDir())

	viper.SetEnvPrefix("MAILSTORE")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ConfigDir returns the path of the user's mailstore config directory.
func ConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "mailstore")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".mailstore"
	}
	return filepath.Join(home, ".config", "mailstore")
}
