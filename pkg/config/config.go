// pkg/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config holds pacgo configuration, loaded from the user dotfile and then
// overridden by command line flags. Flags always win over file values.
type Config struct {
	// DefaultBackend pins a package manager by name. Empty auto-detects.
	DefaultBackend string `yaml:"default_pm"`

	// DryRun prints the resolved commands without spawning them.
	DryRun bool `yaml:"dry_run"`

	// NoConfirm answers every backend confirmation prompt automatically.
	NoConfirm bool `yaml:"no_confirm"`

	// Reinstall forces reinstallation of packages that are already
	// installed.
	Reinstall bool `yaml:"reinstall"`

	// NoCache cleans the backend cache after installs.
	NoCache bool `yaml:"no_cache"`

	// NeedsSudo wraps steps that require root with sudo when the current
	// user is not root.
	NeedsSudo bool `yaml:"needs_sudo"`

	// Debug enables debug logging.
	Debug bool `yaml:"debug"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		DefaultBackend: "", // Auto-detect
		NeedsSudo:      true,
	}
}

// LoadConfig loads configuration from file. A missing file is not an
// error; defaults are returned so a fresh install works without setup.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return DefaultConfig(), nil
		}
		path = filepath.Join(home, ".config", "pacgo", "pacgo.yaml")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	return cfg, nil
}

// SaveConfig saves configuration to file
func SaveConfig(cfg *Config, path string) error {
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".config", "pacgo", "pacgo.yaml")
	}

	// Ensure directory exists
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	return nil
}
