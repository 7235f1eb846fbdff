// Package config loads and validates the YAML profile consumed by
// cmd/artcli: address width, stride schedule, trie kind, and logger
// settings.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoggerConfig configures log-file rotation via lumberjack when
// Logger.Mode == "file".
type FileLoggerConfig struct {
	Path       string `yaml:"path"`
	MaxSize    int    `yaml:"maxSize"`
	MaxBackups int    `yaml:"maxBackups"`
	MaxAge     int    `yaml:"maxAge"`
	Compress   bool   `yaml:"compress"`
}

// LoggerConfig configures the zap logger used by cmd/artcli.
type LoggerConfig struct {
	Active   bool             `yaml:"active"`
	Level    string           `yaml:"level"`
	Encoding string           `yaml:"encoding"`
	Mode     string           `yaml:"mode"`
	File     FileLoggerConfig `yaml:"file"`
}

// TableConfig describes the shape of the art.Table to build: address
// width, stride schedule, and trie variant.
type TableConfig struct {
	AddrBits   int    `yaml:"addrBits"`
	Strides    []int  `yaml:"strides"`
	Compressed bool   `yaml:"compressed"`
	Profile    string `yaml:"profile"`
}

// Config is the top-level profile loaded by cmd/artcli.
type Config struct {
	Logger LoggerConfig `yaml:"logger"`
	Table  TableConfig  `yaml:"table"`
}

// DefaultIPv4 returns the 8x4-bit stride schedule used throughout
// spec.md's end-to-end scenarios.
func DefaultIPv4() TableConfig {
	return TableConfig{
		AddrBits: 32,
		Strides:  []int{4, 4, 4, 4, 4, 4, 4, 4},
		Profile:  "ipv4",
	}
}

// DefaultIPv6 returns a coarser stride schedule sized for 128-bit
// addresses: eight equal 16-bit strides.
func DefaultIPv6() TableConfig {
	return TableConfig{
		AddrBits: 128,
		Strides:  []int{16, 16, 16, 16, 16, 16, 16, 16},
		Profile:  "ipv6",
	}
}

// Load reads and parses a YAML config file. Call ApplyEnvOverrides and
// Validate afterward.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	cfg := &Config{
		Logger: LoggerConfig{Active: true, Level: "info", Encoding: "console", Mode: "stdout"},
		Table:  DefaultIPv4(),
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// ApplyEnvOverrides applies a small set of environment variable
// overrides, the same pattern used throughout this codebase's ambient
// configuration layers.
//
//	ART_PROFILE        -> cfg.Table ("ipv4" or "ipv6"; replaces the whole table section, Compressed included)
//	ART_COMPRESSED      -> cfg.Table.Compressed
//	ART_LOGGER_LEVEL    -> cfg.Logger.Level
//	ART_LOGGER_ENCODING -> cfg.Logger.Encoding
//	ART_LOGGER_MODE     -> cfg.Logger.Mode
//	ART_LOGGER_FILE_PATH -> cfg.Logger.File.Path
func (cfg *Config) ApplyEnvOverrides() {
	if v := os.Getenv("ART_PROFILE"); v != "" {
		switch strings.ToLower(v) {
		case "ipv4":
			cfg.Table = DefaultIPv4()
		case "ipv6":
			cfg.Table = DefaultIPv6()
		}
	}
	if v := os.Getenv("ART_COMPRESSED"); v != "" {
		v = strings.ToLower(v)
		cfg.Table.Compressed = v == "true" || v == "1" || v == "yes"
	}
	if v := os.Getenv("ART_LOGGER_LEVEL"); v != "" {
		cfg.Logger.Level = v
	}
	if v := os.Getenv("ART_LOGGER_ENCODING"); v != "" {
		cfg.Logger.Encoding = v
	}
	if v := os.Getenv("ART_LOGGER_MODE"); v != "" {
		cfg.Logger.Mode = v
	}
	if v := os.Getenv("ART_LOGGER_FILE_PATH"); v != "" {
		cfg.Logger.File.Path = v
	}
}

// Validate checks structural correctness (not engine-level correctness —
// art.New repeats the stride-sum/stride-width checks itself, since the
// engine must hold whether or not it was built through this config
// layer).
func (cfg *Config) Validate() error {
	var errs []string

	switch cfg.Logger.Level {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.level: %s", cfg.Logger.Level))
	}
	switch cfg.Logger.Encoding {
	case "console", "json":
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.encoding: %s", cfg.Logger.Encoding))
	}
	switch cfg.Logger.Mode {
	case "stdout":
	case "file":
		if cfg.Logger.File.Path == "" {
			errs = append(errs, "logger.file.path is required when mode=file")
		}
	default:
		errs = append(errs, fmt.Sprintf("invalid logger.mode: %s", cfg.Logger.Mode))
	}

	if cfg.Table.AddrBits <= 0 || cfg.Table.AddrBits > 128 {
		errs = append(errs, fmt.Sprintf("table.addrBits out of range: %d", cfg.Table.AddrBits))
	}
	if len(cfg.Table.Strides) == 0 {
		errs = append(errs, "table.strides must be non-empty")
	}
	sum := 0
	for i, s := range cfg.Table.Strides {
		if s <= 0 || s > 24 {
			errs = append(errs, fmt.Sprintf("table.strides[%d] out of range (1..24): %d", i, s))
		}
		sum += s
	}
	if sum != cfg.Table.AddrBits {
		errs = append(errs, fmt.Sprintf("table.strides sum to %d, want table.addrBits %d", sum, cfg.Table.AddrBits))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration errors:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// ParseBool mirrors the loose boolean parsing used by ApplyEnvOverrides,
// exposed for cmd/artcli flag handling that wants the same semantics.
func ParseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes"
}

// ParseInt is a small helper so CLI flag parsing and env-override parsing
// share one "ignore malformed integers" policy.
func ParseInt(s string, fallback int) int {
	if n, err := strconv.Atoi(s); err == nil {
		return n
	}
	return fallback
}
