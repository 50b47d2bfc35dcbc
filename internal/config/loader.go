package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const bombermanFile = "bomberman.yaml"

// LoadBomberman loads the bomber configuration. Values missing from a file
// keep their defaults.
// Search order: customPath -> ~/.bomber/configs/bomberman.yaml -> ./configs/bomberman.yaml -> embedded default
func LoadBomberman(customPath string) (BombermanConfig, error) {
	cfg := DefaultBombermanConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath(bombermanFile); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	// Try local configs directory
	if loaded, ok := tryLoad(filepath.Join("configs", bombermanFile)); ok {
		return loaded, nil
	}

	// Use embedded default YAML
	embedded := DefaultBombermanConfig()
	if err := yaml.Unmarshal(defaultBombermanYAML, &embedded); err != nil {
		return DefaultBombermanConfig(), nil // Fallback to hardcoded if embed fails
	}
	return embedded, nil
}

// tryLoad reads an optional config file. Unreadable or malformed files are
// skipped so the next location in the search order is used.
func tryLoad(path string) (BombermanConfig, bool) {
	cfg := DefaultBombermanConfig()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bomber", "configs", filename)
}

// WriteDefault writes the embedded default configuration to path, creating
// parent directories. An existing file is left untouched.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config: %s already exists", path)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("config: failed to create directory: %w", err)
	}
	if err := os.WriteFile(path, defaultBombermanYAML, 0o644); err != nil {
		return fmt.Errorf("config: failed to write %s: %w", path, err)
	}
	return nil
}

// UserConfigPath returns where the user-level bomber config lives.
func UserConfigPath() string {
	return userConfigPath(bombermanFile)
}
