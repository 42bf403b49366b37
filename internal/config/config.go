// Package config handles the global tutel configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
)

// Config represents the global tutel configuration.
type Config struct {
	// Editor is used by `tutel edit` (defaults to $EDITOR).
	Editor string `toml:"editor"`

	// NavDatabase is the SQLite file holding named project directories.
	// Relative paths are resolved against the config file's directory.
	NavDatabase string `toml:"nav_database"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `toml:"log_level"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an ANSI color code ("0" to "255") or a hex color ("#RRGGBB")
	// used for project headlines.
	Accent string `toml:"accent"`
}

// Load loads the configuration from the default location.
// Returns a default config if the file doesn't exist.
func Load() (*Config, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return &Config{}, nil
	}

	return LoadFrom(configPath)
}

// LoadFrom loads the configuration from a specific path.
func LoadFrom(path string) (*Config, error) {
	var config Config
	md, err := toml.DecodeFile(path, &config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("failed to parse config %s: unknown key %q", path, undecoded[0].String())
	}
	return &config, nil
}

// ResolvePath returns explicit when set, otherwise DefaultPath.
func ResolvePath(explicit string) string {
	if strings.TrimSpace(explicit) != "" {
		return explicit
	}
	return DefaultPath()
}

// DefaultPath returns the default config file path.
// Checks ~/.config/tutel/config.toml first (XDG style),
// then falls back to OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "tutel", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "tutel", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// GetEditor returns the editor to use, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if c != nil && c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
}

// NavDatabasePath returns where the nav database lives. configPath is the
// config file the value was read from.
func (c *Config) NavDatabasePath(configPath string) string {
	if c != nil {
		if p := strings.TrimSpace(c.NavDatabase); p != "" {
			if filepath.IsAbs(p) || configPath == "" {
				return p
			}
			return filepath.Join(filepath.Dir(configPath), p)
		}
	}
	return filepath.Join(dataDir(), "tutel", "nav.db")
}

// dataDir follows XDG_DATA_HOME, defaulting to ~/.local/share.
func dataDir() string {
	if d := strings.TrimSpace(os.Getenv("XDG_DATA_HOME")); d != "" {
		return d
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, ".local", "share")
	}
	return "."
}
