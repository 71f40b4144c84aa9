// Package config handles loading the prj CLI settings file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ---------------------------------------------------------------------------
// Config types
// ---------------------------------------------------------------------------

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level  string `yaml:"level"`  // "debug" | "info" | "warn" | "error"
	Format string `yaml:"format"` // "console" | "json"
}

// DiscoveryConfig toggles root discovery mechanisms.
type DiscoveryConfig struct {
	Git bool `yaml:"git"`
}

// InfoConfig holds defaults for `prj project info`.
type InfoConfig struct {
	Format string `yaml:"format"` // "text" | "json" | "yaml"
}

// EnvConfig holds defaults for `prj project generate-env`.
type EnvConfig struct {
	Export bool `yaml:"export"`
}

// Config is the root settings document.
type Config struct {
	Log       LogConfig       `yaml:"log"`
	Discovery DiscoveryConfig `yaml:"discovery"`
	Info      InfoConfig      `yaml:"info"`
	Env       EnvConfig       `yaml:"env"`
}

// Default returns a Config populated with sensible defaults.
func Default() *Config {
	return &Config{
		Log: LogConfig{
			Level:  "warn",
			Format: "console",
		},
		Discovery: DiscoveryConfig{Git: true},
		Info:      InfoConfig{Format: "text"},
	}
}

// Template is the starter file written by `prj config init`.
const Template = `# prj settings

# Diagnostics written to stderr.
log:
  level: warn                   # debug | info | warn | error
  format: console               # console | json

# Search upward for a git repository when PRJ_ROOT is unset.
discovery:
  git: true

# Default output of "prj project info".
info:
  format: text                  # text | json | yaml

# Prefix "prj project generate-env" lines with "export ".
env:
  export: false
`

// Load reads a settings file from path.
// If the file does not exist it returns Default() with no error.
// Missing keys retain their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	// Unmarshal into a plain map so we can apply only the keys that are present.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}

	if log, ok := raw["log"].(map[string]any); ok {
		if v, ok := log["level"].(string); ok && v != "" {
			cfg.Log.Level = strings.ToLower(v)
		}
		if v, ok := log["format"].(string); ok && v != "" {
			cfg.Log.Format = strings.ToLower(v)
		}
	}

	if d, ok := raw["discovery"].(map[string]any); ok {
		if v, ok := d["git"].(bool); ok {
			cfg.Discovery.Git = v
		}
	}

	if info, ok := raw["info"].(map[string]any); ok {
		if v, ok := info["format"].(string); ok && v != "" {
			cfg.Info.Format = strings.ToLower(v)
		}
	}

	if env, ok := raw["env"].(map[string]any); ok {
		if v, ok := env["export"].(bool); ok {
			cfg.Env.Export = v
		}
	}

	return cfg, nil
}

// DefaultPath returns the settings file location under the user config
// directory, e.g. ~/.config/prj/config.yaml.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "prj", "config.yaml"), nil
}

// ResolvePath returns override when set (with ~ expanded), otherwise
// DefaultPath.
func ResolvePath(override string) (string, error) {
	if override == "" {
		return DefaultPath()
	}
	return normalizePath(override)
}

// normalizePath expands ~ and makes the path absolute.
func normalizePath(path string) (string, error) {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		path = filepath.Join(home, path[2:])
	}
	return filepath.Abs(os.ExpandEnv(path))
}
