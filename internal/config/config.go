package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Config holds all application configuration for a databoard host process.
// It is loaded from ~/.databoard/config.yaml and can be overridden by
// environment variables.
type Config struct {
	Board   BoardConfig   `mapstructure:"board" yaml:"board"`
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging"`
	Demo    DemoConfig    `mapstructure:"demo" yaml:"demo"`
}

// RemapRuleConfig is a single source/target remapping rule as it appears in
// the configuration file, mirroring the pair that databoard.Remappings.Add
// accepts at runtime.
type RemapRuleConfig struct {
	Source string `mapstructure:"source" yaml:"source"`
	Target string `mapstructure:"target" yaml:"target"`
}

// BoardConfig describes how the root board and its immediate children should
// be preconfigured before a process starts routing keys through them.
type BoardConfig struct {
	// RootName labels the root board in the demo's log output; it does not
	// appear in the debug tree and has no effect on routing since a
	// standalone board has no identity of its own.
	RootName string `mapstructure:"root_name" yaml:"root_name"`

	// Autoremap is the autoremap setting of the child board that carries the
	// preconfigured Remappings. The demo's other child boards are built with
	// WithParent and always autoremap.
	Autoremap bool `mapstructure:"autoremap" yaml:"autoremap"`

	// Remappings preconfigures the remapping table of the first child board
	// under the root (a parentless root cannot carry remappings). Entries are
	// applied in order via Remappings.Add, so a later duplicate source still
	// fails the same way it would at runtime.
	Remappings []RemapRuleConfig `mapstructure:"remappings" yaml:"remappings,omitempty"`
}

// LoggingConfig contains configuration for application logging.
type LoggingConfig struct {
	// Level is the log level ("debug", "info", "warn", "error").
	Level string `mapstructure:"level" yaml:"level"`
	// File is a log file path; EnsureDirectories creates its parent
	// directory when it is set. The demo CLI does not read it and writes its
	// session log under ~/.databoard/logs.
	File string `mapstructure:"file" yaml:"file"`
	// Pretty is loaded and saved with the rest of the file; nothing in this
	// module reads it.
	Pretty bool `mapstructure:"pretty" yaml:"pretty"`
}

// DemoConfig controls the sample hierarchy built by the demo command.
type DemoConfig struct {
	// Depth is the number of child boards stacked under the root.
	Depth int `mapstructure:"depth" yaml:"depth"`
	// SeedKey is the key the demo writes to at its leaf board.
	SeedKey string `mapstructure:"seed_key" yaml:"seed_key"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".databoard")

	return &Config{
		Board: BoardConfig{
			RootName:   "root",
			Autoremap:  true,
			Remappings: nil,
		},
		Logging: LoggingConfig{
			Level:  "info",
			File:   filepath.Join(dataDir, "logs", "databoard.log"),
			Pretty: false,
		},
		Demo: DemoConfig{
			Depth:   2,
			SeedKey: "greeting",
		},
	}
}

// Load reads configuration from the default location (~/.databoard/config.yaml)
// and merges with environment variables. If no config file exists, it creates
// one with default values.
func Load() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".databoard", "config.yaml")
	return LoadFromPath(configPath)
}

// LoadFromPath reads configuration from a specific file path and merges with
// environment variables. If the file doesn't exist, it creates one with
// default values.
func LoadFromPath(path string) (*Config, error) {
	path = expandPath(path)

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		cfg := Default()
		if err := writeConfigFile(path, cfg); err != nil {
			return nil, fmt.Errorf("failed to write default config: %w", err)
		}
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Enable environment variable overrides.
	// Example: DATABOARD_LOGGING_LEVEL
	v.SetEnvPrefix("DATABOARD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.Logging.File = expandPath(cfg.Logging.File)

	return &cfg, nil
}

// Save writes the current configuration to the default config file location.
func (c *Config) Save() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configPath := filepath.Join(homeDir, ".databoard", "config.yaml")
	return c.SaveToPath(configPath)
}

// SaveToPath writes the current configuration to a specific file path.
func (c *Config) SaveToPath(path string) error {
	path = expandPath(path)

	configDir := filepath.Dir(path)
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	return writeConfigFile(path, c)
}

// GetDataDir returns the databoard data directory path (~/.databoard).
func (c *Config) GetDataDir() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".databoard")
}

// GetConfigPath returns the full path to the config file.
func (c *Config) GetConfigPath() string {
	return filepath.Join(c.GetDataDir(), "config.yaml")
}

// EnsureDirectories creates all necessary directories for operation,
// including the data directory and, if a log file is configured, its parent.
func (c *Config) EnsureDirectories() error {
	dirs := []string{c.GetDataDir()}
	if c.Logging.File != "" {
		dirs = append(dirs, filepath.Dir(c.Logging.File))
	}

	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory %s: %w", dir, err)
		}
	}

	return nil
}

// Validate checks the configuration for common errors and inconsistencies.
func (c *Config) Validate() error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level '%s', must be one of: debug, info, warn, error", c.Logging.Level)
	}

	if c.Board.RootName == "" {
		return fmt.Errorf("board.root_name cannot be empty")
	}

	if c.Demo.Depth < 0 {
		return fmt.Errorf("demo.depth cannot be negative")
	}

	seen := make(map[string]bool, len(c.Board.Remappings))
	for _, rule := range c.Board.Remappings {
		if rule.Source == "" {
			return fmt.Errorf("board.remappings entry has empty source")
		}
		if seen[rule.Source] {
			return fmt.Errorf("board.remappings has duplicate source '%s'", rule.Source)
		}
		seen[rule.Source] = true
	}

	return nil
}

// writeConfigFile writes a Config struct to a YAML file.
// Uses gopkg.in/yaml.v3 directly to ensure proper tag-based serialization.
func writeConfigFile(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// expandPath expands ~ to the user's home directory in a path string.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
