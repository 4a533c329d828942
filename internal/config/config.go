// Package config handles global sextant configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
)

// Config represents the global sextant configuration.
type Config struct {
	// DefaultWorkspace is the name of the default workspace (from Workspaces).
	DefaultWorkspace string `toml:"default_workspace"`

	// Workspaces is a map of workspace names to paths.
	Workspaces map[string]string `toml:"workspaces"`

	// Editor is the editor to use for opening files (defaults to $EDITOR).
	Editor string `toml:"editor"`

	// Audit enables the append-only audit log in the workspace metadata dir.
	Audit bool `toml:"audit"`

	// UI controls optional CLI theming preferences.
	UI UIConfig `toml:"ui"`

	// Scan controls the workspace scanner.
	Scan ScanConfig `toml:"scan"`
}

// UIConfig represents optional CLI theming preferences.
type UIConfig struct {
	// Accent is an optional accent color for CLI output.
	// Supported values are ANSI color codes ("0" to "255") or hex colors ("#RRGGBB").
	Accent string `toml:"accent"`
}

// ScanConfig controls the workspace scanner.
type ScanConfig struct {
	// Exclude lists extra directory names the scanner skips.
	Exclude []string `toml:"exclude"`

	// TimeoutSeconds bounds a full rescan. 0 (the default) means no bound,
	// matching the historical behavior of waiting indefinitely.
	TimeoutSeconds int `toml:"timeout_seconds"`
}

// ScanTimeout returns the configured scan timeout, or 0 for unbounded.
func (c *Config) ScanTimeout() time.Duration {
	if c.Scan.TimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.Scan.TimeoutSeconds) * time.Second
}

// GetWorkspacePath returns the path for a named workspace.
// If name is empty, returns the default workspace path.
func (c *Config) GetWorkspacePath(name string) (string, error) {
	if name == "" {
		name = c.DefaultWorkspace
	}
	if name == "" {
		return "", fmt.Errorf("no default workspace configured")
	}

	if c.Workspaces != nil {
		if path, ok := c.Workspaces[name]; ok {
			return path, nil
		}
	}

	return "", fmt.Errorf("workspace '%s' not found in config", name)
}

// ListWorkspaces returns all configured workspaces with their paths.
func (c *Config) ListWorkspaces() map[string]string {
	result := make(map[string]string, len(c.Workspaces))
	for name, path := range c.Workspaces {
		result[name] = path
	}
	return result
}

// GetEditor returns the editor to use, falling back to $EDITOR.
func (c *Config) GetEditor() string {
	if c.Editor != "" {
		return c.Editor
	}
	return os.Getenv("EDITOR")
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
	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	return &config, nil
}

// DefaultPath returns the default config file path.
// Checks ~/.config/sextant/config.toml first (XDG style),
// then falls back to the OS-specific location.
func DefaultPath() string {
	if home, err := os.UserHomeDir(); err == nil {
		xdgPath := filepath.Join(home, ".config", "sextant", "config.toml")
		if _, err := os.Stat(xdgPath); err == nil {
			return xdgPath
		}
	}

	if configDir, err := os.UserConfigDir(); err == nil {
		return filepath.Join(configDir, "sextant", "config.toml")
	}

	return filepath.Join(".", "config.toml")
}

// CreateDefault creates a default config file if it doesn't exist.
func CreateDefault() (string, error) {
	configPath := DefaultPath()

	if _, err := os.Stat(configPath); err == nil {
		return configPath, nil // Already exists
	}

	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	defaultConfig := `# Sextant Configuration

# Default workspace name (must exist in [workspaces] below)
# default_workspace = "main"

# Named workspaces
# [workspaces]
# main = "/path/to/your/project"

# Editor for opening files (defaults to $EDITOR)
# editor = "code"

# Enable the append-only audit log in .sextant/
# audit = true

# Optional UI accent color for terminal output.
# Supports ANSI color codes (0-255) or hex (#RRGGBB).
# [ui]
# accent = "39"

# Scanner settings
# [scan]
# exclude = ["generated", "third_party"]
# timeout_seconds = 0
`

	if err := os.WriteFile(configPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return configPath, nil
}
