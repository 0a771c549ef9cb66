// Package bench measures parsers the way an external harness would: it
// constructs nothing itself, only calls the parse functions it is given on a
// fixed input and records throughput and allocations.
package bench

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-yaml"
)

// ErrInvalidConfig is wrapped by every *ConfigError.
var ErrInvalidConfig = errors.New("invalid bench config")

// Config controls a benchmark run.
//
// Example:
//
//	cfg := bench.DefaultConfig()
//	cfg.Count = 5
//	results, err := bench.Run(ctx, cfg, cases)
type Config struct {
	// Input is the path every case parses.
	// Default: "/users/jdegoes/posts/123"
	Input string

	// Cases selects cases by name. Empty selects all cases.
	Cases []string

	// Count is the number of measurement rounds per case.
	// Default: 1
	Count int

	// BenchTime is the target duration of a single round.
	// Default: 1s
	BenchTime time.Duration
}

// DefaultConfig returns the configuration used when no flags or file are
// given.
func DefaultConfig() Config {
	return Config{
		Input:     "/users/jdegoes/posts/123",
		Count:     1,
		BenchTime: time.Second,
	}
}

// Validate checks if the configuration is valid.
//
// Valid ranges:
//   - Count: 1 to 1,000
//   - BenchTime: 1ms to 10m
func (c Config) Validate() error {
	if c.Count < 1 || c.Count > 1_000 {
		return &ConfigError{
			Field:   "Count",
			Message: "must be between 1 and 1,000",
		}
	}
	if c.BenchTime < time.Millisecond || c.BenchTime > 10*time.Minute {
		return &ConfigError{
			Field:   "BenchTime",
			Message: "must be between 1ms and 10m",
		}
	}
	for i, name := range c.Cases {
		if name == "" {
			return &ConfigError{
				Field:   fmt.Sprintf("Cases[%d]", i),
				Message: "must not be empty",
			}
		}
	}
	return nil
}

// ConfigError represents an invalid configuration parameter.
type ConfigError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	return "bench: invalid config: " + e.Field + ": " + e.Message
}

// Unwrap returns ErrInvalidConfig.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfig
}

// fileConfig is the YAML layout of a config file. Durations are strings in
// time.ParseDuration syntax.
type fileConfig struct {
	Input     *string  `yaml:"input"`
	Cases     []string `yaml:"cases"`
	Count     *int     `yaml:"count"`
	BenchTime string   `yaml:"bench_time"`
}

// LoadConfig reads a YAML config file on top of DefaultConfig. Keys absent
// from the file keep their default values.
//
// Example file:
//
//	input: /users/jdegoes/posts/123
//	cases: [classic, hardcoded]
//	count: 3
//	bench_time: 500ms
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML config data on top of DefaultConfig.
func ParseConfig(data []byte) (Config, error) {
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}

	cfg := DefaultConfig()
	if fc.Input != nil {
		cfg.Input = *fc.Input
	}
	if len(fc.Cases) > 0 {
		cfg.Cases = fc.Cases
	}
	if fc.Count != nil {
		cfg.Count = *fc.Count
	}
	if fc.BenchTime != "" {
		d, err := time.ParseDuration(fc.BenchTime)
		if err != nil {
			return Config{}, &ConfigError{Field: "BenchTime", Message: err.Error()}
		}
		cfg.BenchTime = d
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
