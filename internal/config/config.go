// Package config handles the XDG configuration directory and config.yaml.
package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"taskman/internal/logging"
)

const (
	// AppName is the application directory name.
	AppName = "taskman"

	// ConfigFile is the optional settings filename inside Dir.
	ConfigFile = "config.yaml"

	// DefaultBanner is the menu title used when config.yaml does not set one.
	DefaultBanner = "Task Manager"
)

// FileConfig models config.yaml.
type FileConfig struct {
	Banner string `yaml:"banner"`
	Color  *bool  `yaml:"color,omitempty"`
}

// Config holds configuration paths and settings.
type Config struct {
	// Dir is the configuration directory path.
	Dir string

	// Debug enables debug logging to stderr.
	Debug bool

	// Banner is the menu title.
	Banner string

	// Color enables banner styling on terminals.
	Color bool

	// Log receives debug lines. Nil unless Debug is set.
	Log *logging.Logger
}

// New creates a new Config with the default or specified config directory.
// If configDir is empty, uses XDG_CONFIG_HOME/taskman or $HOME/.config/taskman.
// Settings start at their defaults; call Load to apply config.yaml.
func New(configDir string) *Config {
	dir := configDir
	if dir == "" {
		dir = DefaultConfigDir()
	}
	return &Config{
		Dir:    dir,
		Banner: DefaultBanner,
		Color:  true,
	}
}

// DefaultConfigDir returns the default configuration directory.
// Uses XDG_CONFIG_HOME if set, otherwise $HOME/.config.
func DefaultConfigDir() string {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, AppName)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		// Fallback to current directory if home can't be determined
		return AppName
	}
	return filepath.Join(home, ".config", AppName)
}

// EnableDebug turns on debug logging to w.
func (c *Config) EnableDebug(w io.Writer) {
	c.Debug = true
	c.Log = logging.New(w)
}

// Path returns the path to config.yaml.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, ConfigFile)
}

// HasFile checks if config.yaml exists.
func (c *Config) HasFile() bool {
	_, err := os.Stat(c.Path())
	return err == nil
}

// Load applies config.yaml on top of the current settings.
// A missing file is not an error.
func (c *Config) Load() error {
	data, err := os.ReadFile(c.Path())
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", c.Path(), err)
	}

	var parsed FileConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", c.Path(), err)
	}

	if banner := strings.TrimSpace(parsed.Banner); banner != "" {
		c.Banner = banner
	}
	if parsed.Color != nil {
		c.Color = *parsed.Color
	}
	return nil
}
