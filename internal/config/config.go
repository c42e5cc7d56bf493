// Package config handles loading artgrow.toml configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default AI settings used when neither the config file nor the
// environment specifies them.
const (
	DefaultModel      = "gpt-4o-mini"
	DefaultBaseURL    = "https://api.openai.com/v1"
	DefaultMaxRetries = 3
)

// Config represents the artgrow.toml configuration file with defaults
// and environment overrides applied.
type Config struct {
	AI    AI    `toml:"ai"`
	Paths Paths `toml:"paths"`
}

// AI configures the model endpoint.
type AI struct {
	// APIKey authenticates against the endpoint. Usually set via the
	// OPENAI_API_KEY environment variable rather than the config file.
	APIKey string `toml:"api-key"`

	// Model is the model identifier sent with each request.
	Model string `toml:"model"`

	// BaseURL is the root of an OpenAI-compatible API.
	BaseURL string `toml:"base-url"`

	// MaxRetries bounds retry attempts for transient failures.
	MaxRetries int `toml:"max-retries"`
}

// Paths configures where documents and logs live.
type Paths struct {
	// DataDir holds the notes and tasks JSON documents.
	DataDir string `toml:"data-dir"`

	// LogDir holds the command audit log.
	LogDir string `toml:"log-dir"`
}

// Load reads ~/.config/artgrow/artgrow.toml, fills in defaults, and
// applies environment overrides. A missing config file is not an error.
//
// Environment overrides: OPENAI_API_KEY, ARTGROW_MODEL,
// ARTGROW_BASE_URL, ARTGROW_DATA_DIR, ARTGROW_LOG_DIR.
func Load() (*Config, error) {
	path, err := configPath()
	if err != nil {
		return nil, err
	}

	cfg, err := loadConfigFile(path)
	if err != nil {
		return nil, err
	}

	applyEnv(cfg)
	if err := applyDefaults(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LogPath returns the audit log file inside the configured log dir.
func (c *Config) LogPath() string {
	return filepath.Join(c.Paths.LogDir, "commands.log")
}

func configPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".config", "artgrow", "artgrow.toml"), nil
}

func loadConfigFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return &Config{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.Decode(string(data), &cfg); err != nil {
		return nil, fmt.Errorf("parse config file %s: %w", path, err)
	}
	return &cfg, nil
}

func applyDefaults(cfg *Config) error {
	if cfg.AI.Model == "" {
		cfg.AI.Model = DefaultModel
	}
	if cfg.AI.BaseURL == "" {
		cfg.AI.BaseURL = DefaultBaseURL
	}
	if cfg.AI.MaxRetries <= 0 {
		cfg.AI.MaxRetries = DefaultMaxRetries
	}
	if cfg.Paths.DataDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("get home directory: %w", err)
		}
		cfg.Paths.DataDir = filepath.Join(homeDir, ".local", "share", "artgrow")
	}
	if cfg.Paths.LogDir == "" {
		cfg.Paths.LogDir = filepath.Join(cfg.Paths.DataDir, "logs")
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("OPENAI_API_KEY"); v != "" {
		cfg.AI.APIKey = v
	}
	if v := os.Getenv("ARTGROW_MODEL"); v != "" {
		cfg.AI.Model = v
	}
	if v := os.Getenv("ARTGROW_BASE_URL"); v != "" {
		cfg.AI.BaseURL = v
	}
	if v := os.Getenv("ARTGROW_DATA_DIR"); v != "" {
		cfg.Paths.DataDir = v
	}
	if v := os.Getenv("ARTGROW_LOG_DIR"); v != "" {
		cfg.Paths.LogDir = v
	}
}
