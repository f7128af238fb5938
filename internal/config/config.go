// Package config provides configuration loading for snac2eac.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/rawbytes"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of every environment variable read by Load.
const EnvPrefix = "SNAC2EAC_"

const maxConfigFileSize = 1024 * 1024

// Config is the full configuration.
type Config struct {
	Output OutputConfig `koanf:"output"`
	Report ReportConfig `koanf:"report"`
	Log    LogConfig    `koanf:"log"`
}

// OutputConfig controls where and how documents are written.
type OutputConfig struct {
	Dir    string `koanf:"dir"`
	Indent int    `koanf:"indent"`
}

// ReportConfig controls the YAML conversion report. An empty path disables it.
type ReportConfig struct {
	Path string `koanf:"path"`
}

// LogConfig controls logging.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		Output: OutputConfig{Dir: "eacsForAspace", Indent: 0},
		Log:    LogConfig{Level: "info", Format: "console"},
	}
}

// Load reads configuration with the following precedence (highest first):
//  1. Environment variables (SNAC2EAC_OUTPUT_DIR -> output.dir)
//  2. YAML config file at path, if path is non-empty
//  3. Defaults
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if path != "" {
		content, err := readConfigFile(path)
		if err != nil {
			return nil, err
		}

		if err := k.Load(rawbytes.Provider(content), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file %s: %w", path, err)
		}
	}

	// SNAC2EAC_OUTPUT_DIR -> output.dir, SNAC2EAC_LOG_LEVEL -> log.level.
	// Only the first underscore separates section from field.
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		lower := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.Replace(lower, "_", ".", 1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	// Keys absent from every source keep their default.
	cfg := Defaults()
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &cfg, nil
}

func readConfigFile(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat config file: %w", err)
	}

	if info.Size() > maxConfigFileSize {
		return nil, fmt.Errorf("config file %s exceeds %d bytes", path, maxConfigFileSize)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	return content, nil
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Output.Indent < 0 {
		return fmt.Errorf("output.indent must not be negative, got %d", c.Output.Indent)
	}

	switch c.Log.Format {
	case "json", "console":
	default:
		return fmt.Errorf("log.format must be json or console, got %q", c.Log.Format)
	}

	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", c.Log.Level)
	}

	return nil
}
