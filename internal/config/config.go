// internal/config/config.go
//
// User preferences for the venn TUI, read from an optional YAML file at
// <user config dir>/venn/config.yaml. A missing file means defaults; a
// malformed file is an error the entry point reports and refuses to start
// on. The config never stores list contents, only presentation preferences.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configDirName  = "venn"
	configFileName = "config.yaml"

	defaultInitialFields = 2
	defaultNamePrefix    = "Array"
	defaultAccentColor   = "#5B8DEF"
	defaultErrorColor    = "#FF6B6B"

	maxInitialFields = 16
)

// Theme holds lipgloss color strings for the TUI.
type Theme struct {
	Accent string `yaml:"accent"`
	Error  string `yaml:"error"`
}

// Config models the on-disk config.yaml plus resolved paths.
type Config struct {
	// InitialFields is how many empty input fields the TUI starts with.
	InitialFields int `yaml:"initial_fields"`

	// NamePrefix labels unnamed fields: "<prefix> 1", "<prefix> 2", ...
	NamePrefix string `yaml:"name_prefix"`

	Theme Theme `yaml:"theme"`

	// Path is where the config was read from (or would be written to).
	// Not part of the YAML document.
	Path string `yaml:"-"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		InitialFields: defaultInitialFields,
		NamePrefix:    defaultNamePrefix,
		Theme: Theme{
			Accent: defaultAccentColor,
			Error:  defaultErrorColor,
		},
	}
}

// Path returns the expected location of the user's config file.
func Path() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user config dir: %w", err)
	}
	return filepath.Join(base, configDirName, configFileName), nil
}

// Load reads the user's config file, falling back to defaults when it does
// not exist. Unset fields in an existing file also fall back per-field.
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), err
	}
	return LoadFile(path)
}

// LoadFile reads a config file from an explicit path. Used by tests and the
// --config flag.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	cfg.Path = path

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed Config
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	parsed.Path = path
	parsed.applyDefaults()
	if err := parsed.validate(); err != nil {
		return cfg, fmt.Errorf("config: %w", err)
	}
	return parsed, nil
}

func (c *Config) applyDefaults() {
	if c.InitialFields == 0 {
		c.InitialFields = defaultInitialFields
	}
	if c.NamePrefix == "" {
		c.NamePrefix = defaultNamePrefix
	}
	if c.Theme.Accent == "" {
		c.Theme.Accent = defaultAccentColor
	}
	if c.Theme.Error == "" {
		c.Theme.Error = defaultErrorColor
	}
}

func (c *Config) validate() error {
	if c.InitialFields < 1 || c.InitialFields > maxInitialFields {
		return fmt.Errorf("initial_fields must be between 1 and %d, got %d", maxInitialFields, c.InitialFields)
	}
	return nil
}
