// SPDX-License-Identifier: MIT
// Package config loads runtime settings for the frontier CLI and engines.
//
// Settings come from an optional file (TOML when the name ends in .toml,
// YAML otherwise) layered over Default(); command-line flags are applied
// on top by the caller.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/frontier/core"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Defaults.
const (
	DefaultThreshold = 32
	DefaultStrategy  = "bfs"
	DefaultSweep     = "all"
	DefaultLogLevel  = "info"
	DefaultLogSize   = 100
	DefaultLogAge    = 28
)

// Config is the full settings tree.
type Config struct {
	// Workers bounds the goroutines per parallel region; 0 means runtime.NumCPU().
	Workers int `yaml:"workers" toml:"workers"`

	// Threshold is the region size below which work runs inline.
	Threshold int `yaml:"threshold" toml:"threshold"`

	// Strategy is the default traversal strategy: bfs or dfs.
	Strategy string `yaml:"strategy" toml:"strategy"`

	// Sweep is the component sweep policy: all or none.
	Sweep string `yaml:"sweep" toml:"sweep"`

	// MaxNodes is the largest node count a graph header may declare.
	MaxNodes int `yaml:"max_nodes" toml:"max_nodes"`

	Log     LogConfig     `yaml:"log" toml:"log"`
	Metrics MetricsConfig `yaml:"metrics" toml:"metrics"`
}

// LogConfig controls the logrus logger.
type LogConfig struct {
	Level string `yaml:"level" toml:"level"`

	// File, when set, sends logs to a rotated file instead of stderr.
	File string `yaml:"file" toml:"file"`

	// MaxSize is the size in megabytes before rotation; MaxAge the days
	// rotated files are kept.
	MaxSize int `yaml:"max_size" toml:"max_log_size"`
	MaxAge  int `yaml:"max_age" toml:"max_log_age"`
}

// MetricsConfig controls the Prometheus endpoint.
type MetricsConfig struct {
	// Addr is the listen address of the /metrics endpoint; empty disables it.
	Addr string `yaml:"addr" toml:"addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Workers:   0,
		Threshold: DefaultThreshold,
		Strategy:  DefaultStrategy,
		Sweep:     DefaultSweep,
		MaxNodes:  core.DefaultMaxNodes,
		Log: LogConfig{
			Level:   DefaultLogLevel,
			MaxSize: DefaultLogSize,
			MaxAge:  DefaultLogAge,
		},
	}
}

// Load reads path over Default() and validates the result.
// An empty path returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if strings.EqualFold(filepath.Ext(path), ".toml") {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode toml %q: %w", path, err)
		}
	} else {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("config: read %q: %w", path, err)
		}
		if err = yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: decode yaml %q: %w", path, err)
		}
	}

	return cfg, cfg.Validate()
}

// Validate checks ranges and enumerations.
func (c Config) Validate() error {
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers must be >= 0 (got %d)", ErrInvalidConfig, c.Workers)
	}
	if c.Threshold < 0 {
		return fmt.Errorf("%w: threshold must be >= 0 (got %d)", ErrInvalidConfig, c.Threshold)
	}
	if c.MaxNodes <= 0 {
		return fmt.Errorf("%w: max_nodes must be > 0 (got %d)", ErrInvalidConfig, c.MaxNodes)
	}
	switch strings.ToLower(c.Strategy) {
	case "bfs", "dfs":
	default:
		return fmt.Errorf("%w: strategy %q (want bfs or dfs)", ErrInvalidConfig, c.Strategy)
	}
	switch strings.ToLower(c.Sweep) {
	case "all", "none":
	default:
		return fmt.Errorf("%w: sweep %q (want all or none)", ErrInvalidConfig, c.Sweep)
	}
	if c.Log.MaxSize < 0 || c.Log.MaxAge < 0 {
		return fmt.Errorf("%w: log rotation limits must be >= 0", ErrInvalidConfig)
	}

	return nil
}
