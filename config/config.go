package config

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config represents the complete journal configuration
type Config struct {
	Owner   string        `json:"owner" yaml:"owner"`
	Journal JournalConfig `json:"journal" yaml:"journal"`
	Server  ServerConfig  `json:"server" yaml:"server"`
}

// JournalConfig contains storage parameters
type JournalConfig struct {
	DBPath          string  `json:"db_path" yaml:"db_path"`
	StartingCapital float64 `json:"starting_capital" yaml:"starting_capital"`
}

// ServerConfig contains HTTP adapter parameters
type ServerConfig struct {
	Addr string `json:"addr" yaml:"addr"`
}

// CurrentOwner resolves the acting user: TRADELOG_OWNER wins over the
// config file. The bool is false when no identity is configured.
func (c *Config) CurrentOwner() (string, bool) {
	if v := os.Getenv("TRADELOG_OWNER"); v != "" {
		return v, true
	}
	if c.Owner != "" {
		return c.Owner, true
	}
	return "", false
}

// LoadFromFile loads configuration from a file (JSON or YAML based on content)
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config file: %w", err)
	}

	cfg := Default()

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, cfg)
	if err != nil {
		err = json.Unmarshal(data, cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config (tried YAML and JSON): %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveToFile saves configuration to a file (JSON or YAML based on extension)
func (c *Config) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(c)
	} else {
		data, err = json.MarshalIndent(c, "", "  ")
	}
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Journal.DBPath == "" {
		return fmt.Errorf("journal.db_path is required")
	}
	if c.Journal.StartingCapital < 0 {
		return fmt.Errorf("journal.starting_capital must not be negative")
	}
	return nil
}

// Default returns a configuration with sensible defaults
func Default() *Config {
	return &Config{
		Journal: JournalConfig{
			DBPath:          "./tradelog.sqlite",
			StartingCapital: 10000,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
	}
}
