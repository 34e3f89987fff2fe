// Package config handles configuration management using Viper
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config represents the application configuration
type Config struct {
	Demo    DemoConfig    `mapstructure:"demo"`
	Cursor  CursorConfig  `mapstructure:"cursor"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// DemoConfig controls the demo host loop
type DemoConfig struct {
	TickRate         int     `mapstructure:"tick_rate"`         // Frames per second for the demo loop
	MouseSensitivity float64 `mapstructure:"mouse_sensitivity"` // Scale applied to sample deltas before accumulation
}

// CursorConfig sets the cursor properties applied at startup
type CursorConfig struct {
	DefaultIcon  string `mapstructure:"default_icon"`  // Icon name, e.g. "default", "crosshair"
	StartGrabbed bool   `mapstructure:"start_grabbed"` // Request a cursor grab when the demo starts
	StartHidden  bool   `mapstructure:"start_hidden"`  // Hide the cursor when the demo starts
}

// LoggingConfig contains logging settings
type LoggingConfig struct {
	FileLogging bool   `mapstructure:"file_logging"` // Enable/disable file logging
	LogLevel    string `mapstructure:"log_level"`    // Override LOG_LEVEL env var
}

var (
	// DefaultConfig provides sensible defaults
	DefaultConfig = Config{
		Demo: DemoConfig{
			TickRate:         60,
			MouseSensitivity: 1.0,
		},
		Cursor: CursorConfig{
			DefaultIcon:  "default",
			StartGrabbed: false,
			StartHidden:  false,
		},
		Logging: LoggingConfig{
			FileLogging: true, // Enable file logging by default
			LogLevel:    "",
		},
	}

	// Global config instance
	cfg *Config

	// Override config path if set
	configPathOverride string
)

// SetConfigPath allows overriding the config path
func SetConfigPath(path string) {
	configPathOverride = path
}

// Init initializes the configuration system
func Init() error {
	viper.SetConfigName("pollframe")
	viper.SetConfigType("toml")

	if configPathOverride != "" {
		viper.SetConfigFile(configPathOverride)
	} else {
		if home := os.Getenv("HOME"); home != "" {
			viper.AddConfigPath(filepath.Join(home, ".config", "pollframe"))
		}
		viper.AddConfigPath(".") // Current directory (lowest priority)
	}

	// Set defaults - need to set individual fields for proper merging
	viper.SetDefault("demo.tick_rate", DefaultConfig.Demo.TickRate)
	viper.SetDefault("demo.mouse_sensitivity", DefaultConfig.Demo.MouseSensitivity)

	viper.SetDefault("cursor.default_icon", DefaultConfig.Cursor.DefaultIcon)
	viper.SetDefault("cursor.start_grabbed", DefaultConfig.Cursor.StartGrabbed)
	viper.SetDefault("cursor.start_hidden", DefaultConfig.Cursor.StartHidden)

	viper.SetDefault("logging.file_logging", DefaultConfig.Logging.FileLogging)
	viper.SetDefault("logging.log_level", DefaultConfig.Logging.LogLevel)

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("error reading config file: %w", err)
		}
		// Config file not found, use defaults
	}

	cfg = &Config{}
	if err := viper.Unmarshal(cfg); err != nil {
		return fmt.Errorf("unable to unmarshal config: %w", err)
	}

	return nil
}

// Get returns the current configuration
func Get() *Config {
	if cfg == nil {
		// Return defaults if not initialized
		return &DefaultConfig
	}
	return cfg
}

// Set sets the current configuration (for testing)
func Set(c *Config) {
	cfg = c
}

// GetConfigPath returns the path the config file is (or would be) saved to
func GetConfigPath() string {
	if configPathOverride != "" {
		return configPathOverride
	}
	if home := os.Getenv("HOME"); home != "" {
		return filepath.Join(home, ".config", "pollframe", "pollframe.toml")
	}
	return "pollframe.toml"
}

// Save saves the current configuration to file
func Save() error {
	configPath := GetConfigPath()

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := viper.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}
