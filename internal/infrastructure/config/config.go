package config

import (
	"fmt"
	"os"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/pelletier/go-toml/v2"
)

// Config holds all application configuration.
type Config struct {
	Server    ServerConfig
	Desktop   DesktopConfig
	Logging   LogConfig
	RateLimit RateLimitConfig
	Session   SessionConfig
	Preload   PreloadConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port string `envconfig:"PORT" default:"8000"`
	Host string `envconfig:"HOST" default:"0.0.0.0"`
}

// DesktopConfig holds desktop and program registry configuration.
type DesktopConfig struct {
	// ProgramsDir is scanned for program definition files at startup
	ProgramsDir string `envconfig:"PROGRAMS_DIR" default:"./programs"`
	// IconsDir holds the icon assets served to the shell
	IconsDir string `envconfig:"ICONS_DIR" default:"./assets/icons"`
	// SettingsFile optionally overlays desktop settings from a TOML file
	SettingsFile string `envconfig:"DESKTOP_SETTINGS" default:""`

	TaskbarHeight int `envconfig:"TASKBAR_HEIGHT" default:"40" toml:"taskbar_height"`
	DefaultWidth  int `envconfig:"DESKTOP_WIDTH" default:"1280" toml:"default_width"`
	DefaultHeight int `envconfig:"DESKTOP_HEIGHT" default:"800" toml:"default_height"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level       string `envconfig:"LOG_LEVEL" default:"info"`
	Development bool   `envconfig:"LOG_DEV" default:"false"`
}

// RateLimitConfig holds rate limiting configuration.
type RateLimitConfig struct {
	RequestsPerSecond int  `envconfig:"RATE_LIMIT_RPS" default:"100"`
	Burst             int  `envconfig:"RATE_LIMIT_BURST" default:"200"`
	Enabled           bool `envconfig:"RATE_LIMIT_ENABLED" default:"true"`
}

// SessionConfig holds workspace persistence configuration.
type SessionConfig struct {
	StoragePath string `envconfig:"SESSION_STORAGE" default:"./data"`
}

// PreloadConfig holds content warming configuration.
type PreloadConfig struct {
	Enabled bool          `envconfig:"PRELOAD_ENABLED" default:"true"`
	Timeout time.Duration `envconfig:"PRELOAD_TIMEOUT" default:"5s"`
}

// Load loads configuration from environment variables, then overlays the
// desktop settings file when one is configured.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.applySettingsFile(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadOrDefault loads configuration from environment or returns default.
func LoadOrDefault() *Config {
	cfg, err := Load()
	if err != nil {
		return Default()
	}
	return cfg
}

// Default returns default configuration.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Port: "8000",
			Host: "0.0.0.0",
		},
		Desktop: DesktopConfig{
			ProgramsDir:   "./programs",
			IconsDir:      "./assets/icons",
			TaskbarHeight: 40,
			DefaultWidth:  1280,
			DefaultHeight: 800,
		},
		Logging: LogConfig{
			Level:       "info",
			Development: false,
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: 100,
			Burst:             200,
			Enabled:           true,
		},
		Session: SessionConfig{
			StoragePath: "./data",
		},
		Preload: PreloadConfig{
			Enabled: true,
			Timeout: 5 * time.Second,
		},
	}
}

// applySettingsFile overlays desktop settings from the configured TOML
// file. A missing file is not an error; a malformed one is.
func (c *Config) applySettingsFile() error {
	if c.Desktop.SettingsFile == "" {
		return nil
	}

	data, err := os.ReadFile(c.Desktop.SettingsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read desktop settings: %w", err)
	}

	if err := toml.Unmarshal(data, &c.Desktop); err != nil {
		return fmt.Errorf("failed to parse desktop settings: %w", err)
	}
	return nil
}
