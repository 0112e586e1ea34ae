package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Load reads and merges configuration from global and project paths.
// Order of precedence (highest to lowest): project config, global config, defaults.
// Missing files are not errors; malformed JSON returns an error.
func Load(globalPath, projectPath string) (*Config, error) {
	cfg := DefaultConfig()

	if globalPath != "" {
		if err := mergeConfigFile(cfg, globalPath); err != nil {
			return nil, fmt.Errorf("loading global config: %w", err)
		}
	}
	if projectPath != "" {
		if err := mergeConfigFile(cfg, projectPath); err != nil {
			return nil, fmt.Errorf("loading project config: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// LoadDefault loads configuration from conventional paths.
// Global: ~/.dayplan/config.json
// Project: .dayplan/config.json (relative to cwd)
func LoadDefault() (*Config, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("getting home directory: %w", err)
	}

	return Load(GlobalPath(homeDir), ProjectPath())
}

// GlobalPath is the per-user config file under home.
func GlobalPath(home string) string {
	return filepath.Join(home, ".dayplan", "config.json")
}

// ProjectPath is the config file of the current directory.
func ProjectPath() string {
	return filepath.Join(".dayplan", "config.json")
}

// mergeConfigFile reads a JSON config file and merges the keys it sets into base.
// Missing files are silently skipped.
func mergeConfigFile(base *Config, path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading %s: %w", path, err)
	}

	var loaded fileConfig
	if err := json.Unmarshal(data, &loaded); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if loaded.APSP != nil {
		base.APSP = *loaded.APSP
	}
	if loaded.Parallelism != nil {
		base.Parallelism = *loaded.Parallelism
	}
	if loaded.MaxLocations != nil {
		base.MaxLocations = *loaded.MaxLocations
	}
	if loaded.Format != nil {
		base.Format = *loaded.Format
	}
	if loaded.HistoryDB != nil {
		base.HistoryDB = *loaded.HistoryDB
	}
	if loaded.Routes != nil {
		base.Routes = *loaded.Routes
	}

	return nil
}
