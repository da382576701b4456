package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"i3uw/pkg/core"
)

const (
	// FileName is the config file looked up next to the working directory.
	FileName = "config.toml"
	appDir   = "i3uw"
)

// ErrNotFound is returned when no config file exists in any searched location.
var ErrNotFound = errors.New("config file not found")

// candidatePaths lists the lookup order used when no path is provided.
func candidatePaths() ([]string, error) {
	paths := []string{FileName}

	homeConfigDir, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user config directory: %w", err)
	}
	return append(paths, filepath.Join(homeConfigDir, appDir, FileName)), nil
}

// Find locates and loads the configuration. A provided path is used as is;
// otherwise ./config.toml and then $XDG_CONFIG_HOME/i3uw/config.toml are tried.
func Find(providedPath string, log core.Logger) (*Config, error) {
	log.Info("Looking for configuration", "provided_path", providedPath)

	if providedPath != "" {
		config, err := loadConfigFromPath(providedPath, log)
		if err != nil {
			return nil, fmt.Errorf("failed to load config from provided path: %w", err)
		}
		return config, nil
	}

	paths, err := candidatePaths()
	if err != nil {
		log.Error("Failed to resolve config paths", err)
		return nil, err
	}

	for _, path := range paths {
		log.Debug("Checking possible config path", "path", path)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		return loadConfigFromPath(path, log)
	}

	log.Error("No config file found", nil, "checked_paths", paths)
	return nil, fmt.Errorf("%w (checked %v)", ErrNotFound, paths)
}
