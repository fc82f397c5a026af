// Package config loads the dba configuration from a TOML or YAML file and
// applies DBA_* environment overrides.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

const (
	DefaultListen           = ":8080"
	DefaultPermutationLimit = 10000
)

// DefaultPaths are searched in order by Find when no path is given.
var DefaultPaths = []string{"dba.toml", "dba.yaml", "dba.yml"}

type Config struct {
	// Headers is the army group CSV file.
	Headers string `toml:"headers" yaml:"headers"`
	// Variants is the army variant CSV file.
	Variants string `toml:"variants" yaml:"variants"`
	Listen   string `toml:"listen" yaml:"listen"`
	// PermutationLimit caps the compositions a command enumerates. It
	// defaults to DefaultPermutationLimit when unset; 0 means no bound.
	PermutationLimit int `toml:"permutation_limit" yaml:"permutation_limit"`
	Log              Log    `toml:"log" yaml:"log"`
}

type Log struct {
	Verbosity int    `toml:"verbosity" yaml:"verbosity"`
	Path      string `toml:"path" yaml:"path"`
}

// Default returns a configuration with every default applied.
func Default() *Config {
	cfg := &Config{PermutationLimit: DefaultPermutationLimit}
	cfg.applyDefaults()
	return cfg
}

// Load reads the file at path, choosing the decoder by extension, then
// applies defaults and environment overrides. Relative CSV paths are
// resolved against the directory of the file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	// Keys missing from the file keep their defaults.
	cfg := Config{PermutationLimit: DefaultPermutationLimit}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, fmt.Errorf("parse config %s: unknown key %q", path, undecoded[0].String())
		}
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("config %s: unsupported extension %q, want .toml, .yaml or .yml", path, ext)
	}

	dir := filepath.Dir(path)
	cfg.Headers = resolve(dir, cfg.Headers)
	cfg.Variants = resolve(dir, cfg.Variants)
	cfg.Log.Path = resolve(dir, cfg.Log.Path)

	cfg.applyDefaults()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find loads path if it is set, otherwise the first of DefaultPaths that
// exists. Without any file it returns the defaults with environment
// overrides applied.
func Find(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	for _, p := range DefaultPaths {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	cfg := Default()
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func (c *Config) applyDefaults() {
	if c.Listen == "" {
		c.Listen = DefaultListen
	}
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("DBA_HEADERS"); ok {
		c.Headers = v
	}
	if v, ok := lookup("DBA_VARIANTS"); ok {
		c.Variants = v
	}
	if v, ok := lookup("DBA_LISTEN"); ok {
		c.Listen = v
	}
	if v, ok := lookup("DBA_PERMUTATION_LIMIT"); ok {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("DBA_PERMUTATION_LIMIT: %q is not a number", v)
		}
		c.PermutationLimit = n
	}
	return nil
}

// Validate rejects settings no command can work with.
func (c *Config) Validate() error {
	if c.PermutationLimit < 0 {
		return fmt.Errorf("permutation_limit must not be negative, got %d", c.PermutationLimit)
	}
	if c.Log.Verbosity < 0 {
		return fmt.Errorf("log.verbosity must not be negative, got %d", c.Log.Verbosity)
	}
	return nil
}

// HasCatalog reports whether both CSV files are configured.
func (c *Config) HasCatalog() bool {
	return c.Headers != "" && c.Variants != ""
}
