// Package config loads the optional tvindex.toml file. Every value can also be
// given on the command line; flags win over the file, and the file wins over
// the defaults.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/pelletier/go-toml/v2"
)

const (
	defaultOutput   = ".gh-pages"
	defaultLogLevel = "info"
)

// Config holds the settings for a generation run.
type Config struct {
	Catalog  string `toml:"catalog"`   // path to the catalog document
	Output   string `toml:"output"`    // root of the generated tree
	LogLevel string `toml:"log_level"` // debug, info, warn, error
}

// Default returns a Config populated with defaults. Catalog has no default.
func Default() Config {
	return Config{
		Output:   defaultOutput,
		LogLevel: defaultLogLevel,
	}
}

// Load reads the TOML file at path over the defaults. An empty path returns
// the defaults. The result is normalized but not validated; call Validate
// once command-line overrides have been applied.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open config: %w", err)
		}
		defer f.Close()

		dec := toml.NewDecoder(f)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) normalize() error {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	var err error
	if c.Catalog, err = expandPath(c.Catalog); err != nil {
		return fmt.Errorf("catalog: %w", err)
	}
	if c.Output, err = expandPath(c.Output); err != nil {
		return fmt.Errorf("output: %w", err)
	}
	return nil
}

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Catalog) == "" {
		return errors.New("catalog path is required")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("output directory is required")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level: %w", err)
	}
	return nil
}

// expandPath replaces a leading "~" with the user's home directory.
func expandPath(p string) (string, error) {
	p = strings.TrimSpace(p)
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~")), nil
}
