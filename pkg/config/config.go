// Package config loads graphel's TOML configuration file.
//
// The file is optional. When present it overrides the built-in layout
// defaults; command-line flags in turn override the file:
//
//	[layout]
//	wrap_threshold = 14
//	node_padding = 2
//	arrows = true
//
//	[cache]
//	disabled = false
//
// Without --config the file is looked up at $XDG_CONFIG_HOME/graphel/config.toml,
// falling back to ~/.config/graphel/config.toml.
package config

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/alphapapa/graph.el/pkg/errors"
	"github.com/alphapapa/graph.el/pkg/layout"
)

// AppName names the configuration and cache directories.
const AppName = "graphel"

// Config is the decoded configuration file.
type Config struct {
	Layout layout.Options `toml:"layout"`
	Cache  Cache          `toml:"cache"`
}

// Cache configures the result cache.
type Cache struct {
	// Disabled turns caching off, as --no-cache does.
	Disabled bool `toml:"disabled"`
	// Dir overrides the cache directory.
	Dir string `toml:"dir,omitempty"`
}

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{Layout: layout.DefaultOptions()}
}

// DefaultPath returns the configuration file location.
func DefaultPath() (string, error) {
	if dir := os.Getenv("XDG_CONFIG_HOME"); dir != "" {
		return filepath.Join(dir, AppName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", AppName, "config.toml"), nil
}

// Load reads the configuration at path. An empty path means DefaultPath, and
// a missing default file yields Default. A missing explicit file is an error.
func Load(path string) (Config, error) {
	explicit := path != ""
	if !explicit {
		p, err := DefaultPath()
		if err != nil {
			return Default(), nil
		}
		path = p
	}

	f, err := os.Open(path)
	if os.IsNotExist(err) {
		if explicit {
			return Config{}, errors.Wrap(errors.ErrCodeFileNotFound, err, "open config %s", path)
		}
		return Default(), nil
	}
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "open config %s", path)
	}
	defer f.Close()

	cfg, err := Decode(f)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "load %s", path)
	}
	return cfg, nil
}

// Decode parses TOML from r on top of Default. Unknown keys and out-of-range
// layout values are errors.
func Decode(r io.Reader) (Config, error) {
	cfg := Default()
	md, err := toml.NewDecoder(r).Decode(&cfg)
	if err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfig, err, "decode toml")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	if err := cfg.Layout.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Write encodes cfg as TOML.
func Write(cfg Config, w io.Writer) error {
	if err := toml.NewEncoder(w).Encode(cfg); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "encode toml")
	}
	return nil
}
