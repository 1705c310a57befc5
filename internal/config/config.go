package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	API   APIConfig
	UI    UIConfig
	State StateConfig
}

// APIConfig holds remote service settings.
type APIConfig struct {
	BaseURL        string `mapstructure:"base_url"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale          string `mapstructure:"locale"`
	DefaultUsername string `mapstructure:"default_username"`
	DefaultPassword string `mapstructure:"default_password"`
}

// StateConfig holds local state settings.
type StateConfig struct {
	DatabasePath string `mapstructure:"database_path"`
}

// Load reads configuration from file and env. Env var overrides use prefix TRIPY_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("api.base_url", "http://localhost:8000/api/v1")
	v.SetDefault("api.timeout_seconds", 45)
	v.SetDefault("ui.locale", "auto")
	v.SetDefault("ui.default_username", "admin")
	v.SetDefault("ui.default_password", "ChangeMe123!")
	v.SetDefault("state.database_path", filepath.Join(os.Getenv("HOME"), ".local", "share", "tripy", "tripy.db"))

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TRIPY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tripy"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TRIPY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config directory if needed.
// Used by the TUI settings flow for non-sensitive preferences such as the locale.
func Save(cfg Config) error {
	path := os.Getenv("TRIPY_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "tripy", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("api.base_url", cfg.API.BaseURL)
	v.Set("api.timeout_seconds", cfg.API.TimeoutSeconds)
	v.Set("ui.locale", cfg.UI.Locale)
	v.Set("ui.default_username", cfg.UI.DefaultUsername)
	v.Set("ui.default_password", cfg.UI.DefaultPassword)
	v.Set("state.database_path", cfg.State.DatabasePath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}
