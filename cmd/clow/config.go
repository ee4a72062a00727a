package main

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// clowConfig is the optional clow.toml next to (or above) the inspected
// files. Flags always win over the file.
type clowConfig struct {
	Diagnostics diagnosticsConfig `toml:"diagnostics"`
}

type diagnosticsConfig struct {
	Color string `toml:"color"` // auto|on|off
	Caret bool   `toml:"caret"`
}

func defaultConfig() clowConfig {
	return clowConfig{
		Diagnostics: diagnosticsConfig{Color: "auto"},
	}
}

// findClowToml идёт вверх от startDir до корня в поисках clow.toml.
func findClowToml(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		candidate := filepath.Join(dir, "clow.toml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, err
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// loadConfig reads clow.toml if present, otherwise returns defaults.
func loadConfig(startDir string) (clowConfig, error) {
	cfg := defaultConfig()
	path, found, err := findClowToml(startDir)
	if err != nil || !found {
		return cfg, err
	}
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return cfg, err
	}
	if cfg.Diagnostics.Color == "" {
		cfg.Diagnostics.Color = "auto"
	}
	return cfg, nil
}
