// Package config loads the piezo CLI configuration.
//
// Configuration is stored under os.UserConfigDir()/piezo/, or under
// $PIEZO_CONFIG_DIR when set:
//
//	piezo/
//	├── config.yaml     # optional settings, see Config
//	└── songbook/       # default badger directory for stored songs
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/goccy/go-yaml"

	"github.com/haivivi/piezo/pkg/audio/songs"
)

const (
	// appDir is the directory name under os.UserConfigDir().
	appDir = "piezo"

	// configFile is the settings file inside the config directory.
	configFile = "config.yaml"

	// songbookDir is the default songbook directory.
	songbookDir = "songbook"

	// EnvDir overrides the configuration directory.
	EnvDir = "PIEZO_CONFIG_DIR"
)

// Config holds the CLI settings. Zero values mean "use the default".
type Config struct {
	// Dir is the configuration directory. Not stored in the file.
	Dir string `yaml:"-"`

	// Songbook is the songbook location: a directory or "memory://".
	Songbook string `yaml:"songbook,omitempty"`

	// Policy is the duration policy for short notes: "accept" or "clamp".
	Policy string `yaml:"policy,omitempty"`

	// MinDurationMs is the minimum audible note duration used by "clamp".
	MinDurationMs int `yaml:"min_duration_ms,omitempty"`

	// Transpose is the default MIDI export transposition in semitones.
	Transpose int `yaml:"transpose,omitempty"`
}

// Load loads the configuration from $PIEZO_CONFIG_DIR or the default location.
func Load() (*Config, error) {
	if dir := os.Getenv(EnvDir); dir != "" {
		return LoadFrom(dir)
	}
	base, err := os.UserConfigDir()
	if err != nil {
		return nil, fmt.Errorf("cannot determine config directory: %w", err)
	}
	return LoadFrom(filepath.Join(base, appDir))
}

// LoadFrom loads the configuration from a specific directory. A missing
// config file is not an error.
func LoadFrom(dir string) (*Config, error) {
	cfg := &Config{}
	data, err := os.ReadFile(filepath.Join(dir, configFile))
	switch {
	case err == nil:
		if err := yaml.UnmarshalWithOptions(data, cfg, yaml.Strict()); err != nil {
			return nil, fmt.Errorf("parse %s: %w", filepath.Join(dir, configFile), err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg.Dir = dir
	return cfg, nil
}

// Path returns the config file path.
func (c *Config) Path() string {
	return filepath.Join(c.Dir, configFile)
}

// SongbookPath returns the configured songbook location, defaulting to a
// directory inside the config directory.
func (c *Config) SongbookPath() string {
	if c.Songbook != "" {
		return c.Songbook
	}
	return filepath.Join(c.Dir, songbookDir)
}

// Save writes the settings to the config file, creating the directory.
func (c *Config) Save() error {
	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(c.Path(), data, 0644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Keys lists the settings accepted by Set, in file order.
var Keys = []string{"songbook", "policy", "min_duration_ms", "transpose"}

// Set updates one setting by its file key. An empty value restores the
// default. Set does not write the file; call Save.
func (c *Config) Set(key, value string) error {
	switch key {
	case "songbook":
		c.Songbook = value
	case "policy":
		if value != "" {
			if _, err := songs.ParseDurationPolicy(value); err != nil {
				return err
			}
		}
		c.Policy = value
	case "min_duration_ms":
		n, err := atoi(key, value)
		if err != nil {
			return err
		}
		if n < 0 {
			return fmt.Errorf("%s must not be negative", key)
		}
		c.MinDurationMs = n
	case "transpose":
		n, err := atoi(key, value)
		if err != nil {
			return err
		}
		c.Transpose = n
	default:
		return fmt.Errorf("unknown config key %q (known: %v)", key, Keys)
	}
	return nil
}

func atoi(key, value string) (int, error) {
	if value == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %q is not an integer", key, value)
	}
	return n, nil
}
