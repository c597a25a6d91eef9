// SPDX-License-Identifier: EPL-2.0

// Package config loads the sampleblend YAML configuration file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/goccy/go-yaml"

	"github.com/ik5/sampleblend/blend"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "sampleblend.yaml"

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by the CLI commands. Flags given on the
// command line take precedence over these values.
type Config struct {
	// Seed makes renders reproducible. Nil means a fresh seed per run.
	Seed *uint64 `yaml:"seed,omitempty"`

	// Blender is a registered blender name or "rand".
	Blender string `yaml:"blender"`

	PostFX   string  `yaml:"post_fx,omitempty"`
	FXChance float64 `yaml:"fx_chance"`

	// Inputs are files or directories used when blend gets no arguments.
	Inputs []string `yaml:"inputs,omitempty"`

	// BitDepth of written WAV files: 8, 16, 24 or 32.
	BitDepth int `yaml:"bit_depth"`

	// SampleRate and Channels force the format inputs are conformed to.
	// Zero keeps the format of the first input.
	SampleRate int `yaml:"sample_rate,omitempty"`
	Channels   int `yaml:"channels,omitempty"`

	// CacheDir enables the persistent render cache.
	CacheDir string `yaml:"cache_dir,omitempty"`

	LogLevel string `yaml:"log_level"`
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{
		Blender:  blend.Random,
		FXChance: 0.3,
		BitDepth: 16,
		LogLevel: "info",
	}
}

// Load reads path on top of Default. A missing file is not an error; an
// empty path means DefaultFile.
func Load(path string) (*Config, error) {
	if path == "" {
		path = DefaultFile
	}

	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Debug("config: no file, using defaults", "path", path)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

var bitDepths = []int{8, 16, 24, 32}

// Validate checks value ranges. Names of blenders and effects are checked
// when they are used.
func (c *Config) Validate() error {
	switch {
	case !slices.Contains(bitDepths, c.BitDepth):
		return fmt.Errorf("%w: bit_depth %d, want one of %v", ErrInvalidConfig, c.BitDepth, bitDepths)
	case c.FXChance < 0 || c.FXChance > 1:
		return fmt.Errorf("%w: fx_chance %v outside [0, 1]", ErrInvalidConfig, c.FXChance)
	case c.SampleRate < 0:
		return fmt.Errorf("%w: sample_rate %d", ErrInvalidConfig, c.SampleRate)
	case c.Channels < 0:
		return fmt.Errorf("%w: channels %d", ErrInvalidConfig, c.Channels)
	}

	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level parses LogLevel ("debug", "info", "warn", "error").
func (c *Config) Level() (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("%w: log_level %q", ErrInvalidConfig, c.LogLevel)
	}
	return l, nil
}

// Options returns the blend options the config describes.
func (c *Config) Options() blend.Options {
	return blend.Options{PostFX: c.PostFX, FXChance: c.FXChance}
}

// Marshal renders c as YAML.
func (c *Config) Marshal() ([]byte, error) {
	data, err := yaml.Marshal(c)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal config: %w", err)
	}
	return data, nil
}
