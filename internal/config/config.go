// Package config provides configuration types and defaults for roster.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/zjrosen/roster/internal/domain/roster"
	"github.com/zjrosen/roster/internal/log"
)

// DefaultConfigPath is where a default config is written when none is found.
const DefaultConfigPath = ".roster/config.yaml"

// Config holds all configuration options for roster.
type Config struct {
	Register RegisterConfig `mapstructure:"register"`
	Log      LogConfig      `mapstructure:"log"`
}

// RegisterConfig holds register settings.
type RegisterConfig struct {
	Capacity int    `mapstructure:"capacity"` // Used when a roster file has no capacity of its own
	File     string `mapstructure:"file"`     // Roster YAML file read by the commands
}

// LogConfig holds debug log settings. Logging is only active with --debug or ROSTER_DEBUG.
type LogConfig struct {
	Path  string `mapstructure:"path"`
	Level string `mapstructure:"level"` // "debug" (default), "info", "warn", "error"
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Register: RegisterConfig{
			Capacity: roster.DefaultCapacity,
			File:     "roster.yaml",
		},
		Log: LogConfig{
			Path:  "roster-debug.log",
			Level: "debug",
		},
	}
}

// Validate checks the configuration for errors.
func Validate(cfg Config) error {
	if err := ValidateRegister(cfg.Register); err != nil {
		return err
	}
	return ValidateLog(cfg.Log)
}

// ValidateRegister checks register configuration for errors.
// Any capacity is accepted; a non-positive one yields registers that admit no names.
func ValidateRegister(reg RegisterConfig) error {
	if reg.File == "" {
		return fmt.Errorf("register.file is required")
	}
	return nil
}

// ValidateLog checks log configuration for errors.
func ValidateLog(l LogConfig) error {
	if _, err := log.ParseLevel(l.Level); err != nil {
		return fmt.Errorf("log.level must be \"debug\", \"info\", \"warn\", or \"error\", got %q", l.Level)
	}
	return nil
}

// DefaultConfigTemplate returns the default config as a YAML string with comments.
func DefaultConfigTemplate() string {
	return `# Roster Configuration

register:
  capacity: 20          # Capacity used when a roster file does not set one
  file: roster.yaml     # Roster file read by the commands (override with --file)

# Debug logging (enable with --debug or ROSTER_DEBUG=1)
log:
  path: roster-debug.log
  level: debug          # debug, info, warn, error
`
}

// WriteDefaultConfig creates a config file with default settings.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	// Create parent directory if needed
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
