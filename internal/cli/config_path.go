package cli

import (
	"fmt"
	"path/filepath"
	"strings"

	"reelquiz/internal/config"
	"reelquiz/internal/spec"
)

// resolveConfigPath normalizes a config path or finds it from CWD.
func resolveConfigPath(configPath string) (string, error) {
	if strings.TrimSpace(configPath) == "" {
		return config.FindConfigPath("")
	}
	abs, err := filepath.Abs(configPath)
	if err != nil {
		return "", fmt.Errorf("resolve config path: %w", err)
	}
	return abs, nil
}

// loadConfig loads the effective config plus the directory its relative
// paths resolve against. When no path is given and no config file exists,
// built-in defaults apply and paths resolve against the working directory.
func loadConfig(configPath string) (spec.Config, string, error) {
	if strings.TrimSpace(configPath) == "" {
		found, err := config.FindConfigPath("")
		if err != nil {
			return config.Default(), "", nil
		}
		cfg, err := config.Load(found)
		if err != nil {
			return spec.Config{}, "", err
		}
		return cfg, config.BaseDirFromConfigPath(found), nil
	}

	abs, err := filepath.Abs(configPath)
	if err != nil {
		return spec.Config{}, "", fmt.Errorf("resolve config path: %w", err)
	}
	cfg, err := config.Load(abs)
	if err != nil {
		return spec.Config{}, "", err
	}
	return cfg, config.BaseDirFromConfigPath(abs), nil
}

// resolveDataPath anchors a relative file path at the config base directory.
func resolveDataPath(baseDir, path string) string {
	if path == "" || filepath.IsAbs(path) || baseDir == "" {
		return path
	}
	return filepath.Join(baseDir, path)
}
