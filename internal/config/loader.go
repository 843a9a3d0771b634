package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"gopkg.in/yaml.v3"
)

// AppName is the directory name used under the XDG base directories.
const AppName = "tui-bingo"

const configFile = "bingo.yaml"

// Load loads the board configuration.
// Search order: customPath -> $XDG_CONFIG_HOME/tui-bingo/bingo.yaml -> ./configs/bingo.yaml -> embedded default.
// Fields missing from a file keep their default values.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		cfg, err := loadFile(customPath)
		if err != nil {
			return Default(), err
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath, err := xdg.SearchConfigFile(filepath.Join(AppName, configFile)); err == nil {
		if cfg, err := loadFile(userCfgPath); err == nil {
			return cfg, nil
		}
	}

	// Try local configs directory
	if cfg, err := loadFile(filepath.Join("configs", configFile)); err == nil {
		return cfg, nil
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultBingoYAML)
	if err != nil {
		return Default(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// loadFile reads and parses a single config file.
func loadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Default(), fmt.Errorf("config: failed to read %s: %w", path, err)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Default(), fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes YAML on top of the defaults and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Default(), err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("config: cannot encode: %w", err)
	}
	return data, nil
}

// DefaultDBPath returns the win history database path under $XDG_DATA_HOME.
func DefaultDBPath() string {
	path, err := xdg.DataFile(filepath.Join(AppName, "history.db"))
	if err != nil {
		return filepath.Join("~", "."+AppName, "history.db")
	}
	return path
}

// DefaultHostKeyPath returns the SSH host key path under $XDG_DATA_HOME.
func DefaultHostKeyPath() (string, error) {
	path, err := xdg.DataFile(filepath.Join(AppName, "host_key"))
	if err != nil {
		return "", fmt.Errorf("config: cannot resolve host key path: %w", err)
	}
	return path, nil
}

// ScreenshotDir returns the directory where text screenshots are written.
func ScreenshotDir() string {
	return filepath.Join(xdg.DataHome, AppName, "screenshots")
}
