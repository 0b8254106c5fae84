// Package config loads settings for the catalog browser.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const EnvPrefix = "FOODCAT"

// Config contains configurable parameters for the catalog browser.
// Use DefaultConfig() to get sensible defaults, then override as needed.
type Config struct {
	// Formatting
	CurrencySymbol string `mapstructure:"currency-symbol"` // Prefix for prices (default: "₹")
	DeliveryUnit   string `mapstructure:"delivery-unit"`   // Suffix for delivery time (default: "min")

	// Data
	CatalogFile string `mapstructure:"catalog-file"` // Optional YAML table replacing the embedded one

	// Terminal
	AltScreen bool `mapstructure:"alt-screen"`
	Mouse     bool `mapstructure:"mouse"`

	// Animation (harmonica spring for the category highlight)
	AnimationFPS    int     `mapstructure:"animation-fps"`
	SpringFrequency float64 `mapstructure:"spring-frequency"`
	SpringDamping   float64 `mapstructure:"spring-damping"`

	// Layout
	ChartHeight int `mapstructure:"chart-height"`

	// Diagnostics; empty disables logging while the TUI runs
	LogFile string `mapstructure:"log-file"`
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		CurrencySymbol: "₹",
		DeliveryUnit:   "min",

		AltScreen: true,
		Mouse:     true,

		AnimationFPS:    60,
		SpringFrequency: 12.0,
		SpringDamping:   0.9,

		ChartHeight: 6,
	}
}

// WithCatalogFile returns a copy of the config reading the catalog from path.
func (c Config) WithCatalogFile(path string) Config {
	c.CatalogFile = path
	return c
}

// WithCurrency returns a copy of the config with a different currency symbol.
func (c Config) WithCurrency(symbol string) Config {
	c.CurrencySymbol = symbol
	return c
}

// WithMouse returns a copy of the config with mouse support enabled/disabled.
func (c Config) WithMouse(enabled bool) Config {
	c.Mouse = enabled
	return c
}

// WithLogFile returns a copy of the config logging to path.
func (c Config) WithLogFile(path string) Config {
	c.LogFile = path
	return c
}

// Validate checks if the configuration is valid and returns an error if not.
func (c Config) Validate() error {
	if c.DeliveryUnit == "" {
		return &ConfigError{Field: "DeliveryUnit", Message: "must not be empty"}
	}
	if c.AnimationFPS <= 0 {
		return &ConfigError{Field: "AnimationFPS", Message: "must be positive"}
	}
	if c.SpringFrequency <= 0 {
		return &ConfigError{Field: "SpringFrequency", Message: "must be positive"}
	}
	if c.SpringDamping < 0 {
		return &ConfigError{Field: "SpringDamping", Message: "must not be negative"}
	}
	if c.ChartHeight < 3 {
		return &ConfigError{Field: "ChartHeight", Message: "must be at least 3"}
	}
	return nil
}

// ConfigError represents a configuration validation error.
type ConfigError struct {
	Field   string
	Message string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Field + " " + e.Message
}

// Load merges defaults, an optional YAML file and FOODCAT_* environment variables.
// A missing file is not an error.
func Load(path string) (Config, error) {
	var cfg Config
	def := DefaultConfig()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("currency-symbol", def.CurrencySymbol)
	v.SetDefault("delivery-unit", def.DeliveryUnit)
	v.SetDefault("catalog-file", def.CatalogFile)
	v.SetDefault("alt-screen", def.AltScreen)
	v.SetDefault("mouse", def.Mouse)
	v.SetDefault("animation-fps", def.AnimationFPS)
	v.SetDefault("spring-frequency", def.SpringFrequency)
	v.SetDefault("spring-damping", def.SpringDamping)
	v.SetDefault("chart-height", def.ChartHeight)
	v.SetDefault("log-file", def.LogFile)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) && !os.IsNotExist(err) {
				return cfg, fmt.Errorf("reading config: %w", err)
			}
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return cfg, fmt.Errorf("decoding config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
