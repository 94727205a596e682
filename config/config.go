// Package config loads optional per-user defaults for the drawing
// tools. Explicit command-line flags always override config values; a
// missing config file is not an error.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config carries tool defaults.
type Config struct {
	Layer      int    `koanf:"layer"`      // default compositor layer, 1-16
	Volume     int    `koanf:"volume"`     // default sound volume, 0-100
	Margin     int    `koanf:"margin"`     // default margin in pixels
	Resolution string `koanf:"resolution"` // WxH or LOW/HIGH preset
}

// Default returns the built-in defaults used when no config file
// provides a value.
func Default() *Config {
	return &Config{
		Layer:  1,
		Volume: 100,
	}
}

// Load reads the standard config locations in priority order
// (~/.config/termgfx/config.toml, then ./termgfx.toml, last wins).
func Load() (*Config, error) {
	return LoadFrom(configPaths()...)
}

// LoadFrom merges the given TOML files over the defaults. Files that
// do not exist are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err != nil {
			continue
		}
		if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
			return nil, fmt.Errorf("load config %s: %w", path, err)
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func configPaths() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "termgfx", "config.toml"))
	}
	paths = append(paths, "termgfx.toml")
	return paths
}
