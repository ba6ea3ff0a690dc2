package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// AppDir is the per-user data directory under $HOME.
const AppDir = ".garden"

// LoadGarden loads the game configuration.
// Search order: customPath -> ~/.garden/configs/garden.yaml -> ./configs/garden.yaml -> embedded default
// Files only need the keys they change; everything else keeps the embedded default.
func LoadGarden(customPath string) (GardenConfig, error) {
	cfg := embeddedDefault()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("garden.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			overlay := cfg
			if err := yaml.Unmarshal(data, &overlay); err == nil {
				return overlay, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/garden.yaml"); err == nil {
		overlay := cfg
		if err := yaml.Unmarshal(data, &overlay); err == nil {
			return overlay, nil
		}
	}

	return cfg, nil
}

// embeddedDefault parses the embedded YAML.
func embeddedDefault() GardenConfig {
	var cfg GardenConfig
	if err := yaml.Unmarshal(defaultGardenYAML, &cfg); err != nil {
		return DefaultGardenConfig() // Fallback to hardcoded if embed fails
	}
	return cfg
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDir, "configs", filename)
}

// DefaultDBPath returns ~/.garden/garden.db.
func DefaultDBPath() string {
	return filepath.Join("~", AppDir, "garden.db")
}
