// Package config loads asciify settings from an optional YAML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"slices"
	"strconv"
	"strings"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/farcloser/asciify/internal/collect"
	"github.com/farcloser/asciify/internal/mapping"
)

// ErrInvalid is returned for configuration files that cannot be applied.
var ErrInvalid = errors.New("invalid configuration")

// Config holds run settings. Command-line flags take precedence over it.
type Config struct {
	Pattern      string
	Recursive    bool
	Backup       bool
	Compose      bool
	Workers      int
	ExcludeDirs  []string
	Replacements map[string]string // source character (or U+XXXX) to ASCII replacement
}

// file mirrors the YAML layout; pointers tell unset from false.
type file struct {
	Pattern      string            `yaml:"pattern"`
	Recursive    *bool             `yaml:"recursive"`
	Backup       *bool             `yaml:"backup"`
	Compose      bool              `yaml:"compose"`
	Workers      int               `yaml:"workers"`
	ExcludeDirs  []string          `yaml:"exclude_dirs"`
	Replacements map[string]string `yaml:"replacements"`
}

// Default returns the settings used without a configuration file.
func Default() *Config {
	return &Config{
		Pattern:   collect.DefaultPattern,
		Recursive: true,
		Backup:    true,
		Workers:   runtime.NumCPU(),
	}
}

// LoadFile reads a YAML configuration file and fills unset values with defaults.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-specified configuration file
	if err != nil {
		return nil, err
	}

	return Parse(data)
}

// Parse decodes YAML configuration. Unknown keys are rejected.
func Parse(data []byte) (*Config, error) {
	var raw file

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)

	if err := decoder.Decode(&raw); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	cfg := Default()

	if raw.Pattern != "" {
		cfg.Pattern = raw.Pattern
	}

	if raw.Recursive != nil {
		cfg.Recursive = *raw.Recursive
	}

	if raw.Backup != nil {
		cfg.Backup = *raw.Backup
	}

	cfg.Compose = raw.Compose

	if raw.Workers < 0 {
		return nil, fmt.Errorf("%w: workers must be positive, got %d", ErrInvalid, raw.Workers)
	}

	if raw.Workers > 0 {
		cfg.Workers = raw.Workers
	}

	cfg.ExcludeDirs = slices.Clone(raw.ExcludeDirs)
	cfg.Replacements = raw.Replacements

	return cfg, nil
}

// Table layers the configured replacements over base. The result is validated for ASCII
// closure and meant to be built once at startup.
func (c *Config) Table(base *mapping.Table) (*mapping.Table, error) {
	if len(c.Replacements) == 0 {
		return base, nil
	}

	entries := make([]mapping.Entry, 0, len(c.Replacements))

	for key, target := range c.Replacements {
		source, err := parseSource(key)
		if err != nil {
			return nil, err
		}

		entries = append(entries, mapping.Entry{Source: source, Target: target, Category: mapping.CategoryCustom})
	}

	table, err := base.With(entries...)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalid, err)
	}

	return table, nil
}

// parseSource accepts a single character or its U+XXXX notation.
func parseSource(key string) (rune, error) {
	if hex, ok := strings.CutPrefix(strings.ToUpper(key), "U+"); ok && len(hex) >= 4 {
		code, err := strconv.ParseUint(hex, 16, 32)
		if err != nil || !utf8.ValidRune(rune(code)) {
			return 0, fmt.Errorf("%w: replacement key %q is not a valid code point", ErrInvalid, key)
		}

		return rune(code), nil
	}

	if utf8.RuneCountInString(key) != 1 {
		return 0, fmt.Errorf("%w: replacement key %q must be a single character", ErrInvalid, key)
	}

	source, _ := utf8.DecodeRuneInString(key)

	return source, nil
}
