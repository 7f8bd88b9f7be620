// Copyright (C) 2023 Michael J. Fromberger. All Rights Reserved.

// Package config loads settings for the jsurf command-line tool.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/creachadair/jsurf/fixup"
	"github.com/tailscale/hujson"
	"gopkg.in/yaml.v3"
)

// Names are the file names searched for by Find, in order of preference.
var Names = []string{".jsurf.yaml", ".jsurf.yml", ".jsurf.json", ".jsurf.jsonc"}

// Config holds the settings for the tool.
type Config struct {
	// Indent is the per-level indentation of formatted output.
	// It must consist only of spaces and tabs.
	Indent string `yaml:"indent" json:"indent"`

	// MaxIterations bounds the number of repair rounds. It may not exceed
	// fixup.DefaultMaxIterations.
	MaxIterations int `yaml:"max_iterations" json:"max_iterations"`

	// CompareLimit bounds the number of differences reported by compare.
	CompareLimit int `yaml:"compare_limit" json:"compare_limit"`

	// LogLevel is one of "debug", "info", "warn", or "error".
	LogLevel string `yaml:"log_level" json:"log_level"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Indent:        "  ",
		MaxIterations: fixup.DefaultMaxIterations,
		CompareLimit:  100,
		LogLevel:      "info",
	}
}

// Load reads the configuration file at path, filling in defaults for any
// settings it omits. Files named *.yaml or *.yml are read as YAML; any other
// file is read as JSON, with comments and trailing commas permitted.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	cfg := Default()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
	default:
		std, err := hujson.Standardize(data)
		if err != nil {
			return nil, fmt.Errorf("parse config %q: %w", path, err)
		}
		if err := json.Unmarshal(std, cfg); err != nil {
			return nil, fmt.Errorf("decode config %q: %w", path, err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %q: %w", path, err)
	}
	return cfg, nil
}

// Find searches dir and its parent directories for a configuration file and
// returns the path of the first one found, or "" if there is none.
func Find(dir string) string {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return ""
	}
	for {
		for _, name := range Names {
			path := filepath.Join(dir, name)
			if fi, err := os.Stat(path); err == nil && fi.Mode().IsRegular() {
				return path
			}
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// Validate checks c for invalid settings. Counts that are out of range are
// replaced by their defaults; an invalid indent or log level is an error.
func (c *Config) Validate() error {
	def := Default()
	if c.MaxIterations <= 0 || c.MaxIterations > fixup.DefaultMaxIterations {
		c.MaxIterations = def.MaxIterations
	}
	if c.CompareLimit <= 0 {
		c.CompareLimit = def.CompareLimit
	}
	if c.Indent == "" {
		c.Indent = def.Indent
	} else if strings.Trim(c.Indent, " \t") != "" {
		return fmt.Errorf("invalid indent %q: only spaces and tabs are allowed", c.Indent)
	}
	if c.LogLevel == "" {
		c.LogLevel = def.LogLevel
	}
	if _, err := c.Level(); err != nil {
		return err
	}
	return nil
}

// Level returns the slog level named by c.LogLevel.
func (c *Config) Level() (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return 0, fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return lvl, nil
}
