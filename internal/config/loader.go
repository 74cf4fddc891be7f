package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const (
	// AppName is the application name used for the config directory
	AppName = "worklog"
	// ConfigFile is the name of the TOML configuration file
	ConfigFile = "config.toml"
)

// GetConfigPath returns the path to the TOML config file, creating the
// config directory if needed.
func GetConfigPath() (string, error) {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	appDir := filepath.Join(configDir, AppName)
	if err := os.MkdirAll(appDir, 0755); err != nil {
		return "", err
	}

	return filepath.Join(appDir, ConfigFile), nil
}

// LoadFromFile overlays configuration from a TOML file onto c. A missing
// file is not an error; the defaults stand.
func (c *Config) LoadFromFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}
	_, err := toml.DecodeFile(path, c)
	return err
}

// Load builds the effective configuration: defaults, overlaid by the TOML
// config file when present, overlaid by environment variables.
func Load() (*Config, error) {
	cfg := NewConfig()

	path, err := GetConfigPath()
	if err == nil {
		if err := cfg.LoadFromFile(path); err != nil {
			return nil, err
		}
	}

	if err := cfg.LoadFromEnvironment(); err != nil {
		return nil, err
	}
	return cfg, nil
}
