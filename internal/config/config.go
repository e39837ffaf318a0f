// Package config provides configuration loading and validation for lift.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"
)

// Standard config directory. The first of configFileNames found there is used.
const defaultConfigDir = "~/.config/lift"

var configFileNames = []string{"config.yaml", "config.yml", "config.json"}

// Environment variables that override file values.
const (
	EnvDatabasePath = "LIFT_DATABASE_PATH"
	EnvLogLevel     = "LIFT_LOG_LEVEL"
)

// Config holds all lift configuration settings.
type Config struct {
	DatabasePath  string `json:"database_path" yaml:"database_path"`
	UserID        int64  `json:"user_id" yaml:"user_id"`
	RestPresets   []int  `json:"rest_presets" yaml:"rest_presets"` // seconds
	SeedExercises bool   `json:"seed_exercises" yaml:"seed_exercises"`
	LogLevel      string `json:"log_level" yaml:"log_level"`
	LogFile       string `json:"log_file" yaml:"log_file"` // empty: next to the database

	// expandedPaths tracks whether ExpandPaths has been called.
	expandedPaths bool
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		DatabasePath:  "~/.local/share/lift/lift.db",
		UserID:        1,
		RestPresets:   []int{30, 60, 90, 120},
		SeedExercises: true,
		LogLevel:      "info",
	}
}

// DefaultPath returns the config file lift reads when none is given:
// the first existing file in ~/.config/lift, or config.yaml there.
func DefaultPath() (string, error) {
	dir, err := expandPath(defaultConfigDir)
	if err != nil {
		return "", fmt.Errorf("failed to expand config dir: %w", err)
	}
	for _, name := range configFileNames {
		p := filepath.Join(dir, name)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return filepath.Join(dir, configFileNames[0]), nil
}

// Load reads config from the standard location, falling back to defaults
// if no file exists. Missing fields use default values (not zero values).
func Load() (*Config, error) {
	path, err := DefaultPath()
	if err != nil {
		return nil, err
	}
	return LoadFromPath(path)
}

// LoadFromPath reads config from a specific path. The format follows the
// extension: .json is JSON, anything else YAML. If the file doesn't exist,
// defaults are used. Environment overrides are applied last.
func LoadFromPath(path string) (*Config, error) {
	return loadFromPath(path, os.LookupEnv)
}

func loadFromPath(path string, lookupEnv func(string) (string, bool)) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		// No config file - defaults only.
	case err != nil:
		return nil, fmt.Errorf("failed to read config file: %w", err)
	default:
		var fileCfg fileConfig
		if err := decode(path, data, &fileCfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
		mergeConfig(cfg, &fileCfg)
	}

	applyEnv(cfg, lookupEnv)

	if err := cfg.ExpandPaths(); err != nil {
		return nil, fmt.Errorf("failed to expand paths: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

func decode(path string, data []byte, out *fileConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Unmarshal(data, out)
	}
	return yaml.Unmarshal(data, out)
}

// fileConfig is used for parsing with pointer fields to detect what was set.
type fileConfig struct {
	DatabasePath  *string `json:"database_path" yaml:"database_path"`
	UserID        *int64  `json:"user_id" yaml:"user_id"`
	RestPresets   *[]int  `json:"rest_presets" yaml:"rest_presets"`
	SeedExercises *bool   `json:"seed_exercises" yaml:"seed_exercises"`
	LogLevel      *string `json:"log_level" yaml:"log_level"`
	LogFile       *string `json:"log_file" yaml:"log_file"`
}

// mergeConfig merges file config values into the default config.
// Only non-nil values from the file config are applied.
func mergeConfig(cfg *Config, fileCfg *fileConfig) {
	if fileCfg.DatabasePath != nil {
		cfg.DatabasePath = *fileCfg.DatabasePath
	}
	if fileCfg.UserID != nil {
		cfg.UserID = *fileCfg.UserID
	}
	if fileCfg.RestPresets != nil {
		cfg.RestPresets = *fileCfg.RestPresets
	}
	if fileCfg.SeedExercises != nil {
		cfg.SeedExercises = *fileCfg.SeedExercises
	}
	if fileCfg.LogLevel != nil {
		cfg.LogLevel = *fileCfg.LogLevel
	}
	if fileCfg.LogFile != nil {
		cfg.LogFile = *fileCfg.LogFile
	}
}

func applyEnv(cfg *Config, lookupEnv func(string) (string, bool)) {
	if v, ok := lookupEnv(EnvDatabasePath); ok && v != "" {
		cfg.DatabasePath = v
	}
	if v, ok := lookupEnv(EnvLogLevel); ok && v != "" {
		cfg.LogLevel = v
	}
}

// Validate checks that all config values are valid.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.DatabasePath) == "" {
		errs = append(errs, errors.New("database_path must be non-empty"))
	}

	if c.UserID < 1 {
		errs = append(errs, errors.New("user_id must be >= 1"))
	}

	if len(c.RestPresets) == 0 {
		errs = append(errs, errors.New("rest_presets must list at least one duration"))
	}
	for i, secs := range c.RestPresets {
		if secs <= 0 {
			errs = append(errs, fmt.Errorf("rest_presets[%d] must be > 0, got %d", i, secs))
		}
	}

	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Errorf("log_level %q is not a known level", c.LogLevel))
	}

	if len(errs) > 0 {
		return errors.Join(errs...)
	}

	return nil
}

// ExpandPaths expands ~ to home directory in all path fields.
func (c *Config) ExpandPaths() error {
	if c.expandedPaths {
		return nil
	}

	var err error

	c.DatabasePath, err = expandPath(c.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to expand database_path: %w", err)
	}

	if c.LogFile != "" {
		c.LogFile, err = expandPath(c.LogFile)
		if err != nil {
			return fmt.Errorf("failed to expand log_file: %w", err)
		}
	}

	c.expandedPaths = true
	return nil
}

// GetDatabasePath returns the expanded database path.
func (c *Config) GetDatabasePath() string {
	return c.DatabasePath
}

// GetLogFile returns the log file used while the TUI owns the terminal.
func (c *Config) GetLogFile() string {
	if c.LogFile != "" {
		return c.LogFile
	}
	return filepath.Join(filepath.Dir(c.DatabasePath), "lift.log")
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) (string, error) {
	if path == "" {
		return "", nil
	}

	// Expand ~
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		path = filepath.Join(home, path[1:])
	}

	// Clean the path.
	return filepath.Clean(path), nil
}
