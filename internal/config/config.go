// Package config loads the emission options consumed by the identifier
// layer: which snake-case splitter to use and how enum discriminants are
// represented.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/jpx40/pilota/internal/symbol"
)

// ErrUnsupportedFormat is returned when the config file extension is not
// one of .toml, .yaml or .yml.
var ErrUnsupportedFormat = errors.New("config: unsupported file format")

// Config captures the naming options supplied to the emission engine.
type Config struct {
	// NonstandardSnakeCase selects the rustc-compatible word splitter
	// for snake-case roles instead of the generic one.
	NonstandardSnakeCase bool `toml:"nonstandard_snake_case" yaml:"nonstandard_snake_case"`

	// EnumRepr names the primitive backing generated enum
	// discriminants. Empty means "i32", the only recognized value.
	EnumRepr string `toml:"enum_repr" yaml:"enum_repr"`
}

// Default returns the options used when no config file is present.
func Default() *Config {
	return &Config{EnumRepr: "i32"}
}

// Load reads and validates a config file. The format is chosen by file
// extension.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks option values against the recognized set.
func (c *Config) Validate() error {
	_, err := c.Repr()
	return err
}

// Repr resolves the configured enum representation.
func (c *Config) Repr() (symbol.EnumRepr, error) {
	switch c.EnumRepr {
	case "", "i32":
		return symbol.EnumReprI32, nil
	default:
		return 0, fmt.Errorf("config: unknown enum_repr %q", c.EnumRepr)
	}
}
