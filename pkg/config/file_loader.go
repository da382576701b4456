package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"

	"i3uw/pkg/core"
)

// ErrUnsupportedFormat is returned for config files whose extension has no decoder.
var ErrUnsupportedFormat = errors.New("unsupported config format")

// fileSchema mirrors the on-disk layout. Pointers tell a missing key apart
// from a zero value.
type fileSchema struct {
	HandledWorkspaces []string    `toml:"handled_workspaces" yaml:"handled_workspaces" json:"handled_workspaces"`
	NotifyCommand     string      `toml:"notify_command" yaml:"notify_command" json:"notify_command"`
	Window            *fileWindow `toml:"window" yaml:"window" json:"window"`
}

type fileWindow struct {
	Size     *fileSize     `toml:"size" yaml:"size" json:"size"`
	Position *filePosition `toml:"position" yaml:"position" json:"position"`
}

type fileSize struct {
	Width  *int `toml:"width" yaml:"width" json:"width"`
	Height *int `toml:"height" yaml:"height" json:"height"`
}

type filePosition struct {
	X *int `toml:"x" yaml:"x" json:"x"`
	Y *int `toml:"y" yaml:"y" json:"y"`
}

// LoadFromFile loads the configuration from a TOML, YAML or JSON(C) file.
func (c *Config) LoadFromFile(path string, log core.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return fmt.Errorf("failed to read config file: %w", err)
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	var temp fileSchema
	if err := decode(path, data, &temp, log); err != nil {
		log.Error("Failed to parse config file", err, "path", path)
		return err
	}
	log.Debug("Config file parsed successfully")

	if err := temp.validate(); err != nil {
		log.Error("Invalid configuration", err, "path", path)
		return fmt.Errorf("invalid config %s: %w", path, err)
	}

	// Assign to private fields
	c.handledWorkspaces = temp.HandledWorkspaces
	c.size = Size{Width: *temp.Window.Size.Width, Height: *temp.Window.Size.Height}
	c.position = Position{X: *temp.Window.Position.X, Y: *temp.Window.Position.Y}
	c.notifyCommand = temp.NotifyCommand
	c.path = path

	return nil
}

func decode(path string, data []byte, out *fileSchema, log core.Logger) error {
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), out)
		if err != nil {
			return fmt.Errorf("failed to parse TOML %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, 0, len(undecoded))
			for _, k := range undecoded {
				keys = append(keys, k.String())
			}
			log.Warn("Ignoring unknown config keys", "keys", keys)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to parse YAML %s: %w", path, err)
		}
	case ".json", ".jsonc":
		standardized, err := hujson.Standardize(data)
		if err != nil {
			return fmt.Errorf("failed to parse JSON %s: %w", path, err)
		}
		dec := json.NewDecoder(bytes.NewReader(standardized))
		if err := dec.Decode(out); err != nil {
			return fmt.Errorf("failed to parse JSON %s: %w", path, err)
		}
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	return nil
}

// loadConfigFromPath loads the configuration from a file.
func loadConfigFromPath(path string, log core.Logger) (*Config, error) {
	config := &Config{}
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
