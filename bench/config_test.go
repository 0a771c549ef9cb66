package bench

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultConfigValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Errorf("DefaultConfig().Validate() = %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*Config)
		wantField string
	}{
		{"count zero", func(c *Config) { c.Count = 0 }, "Count"},
		{"count too large", func(c *Config) { c.Count = 1001 }, "Count"},
		{"bench time too short", func(c *Config) { c.BenchTime = time.Microsecond }, "BenchTime"},
		{"bench time too long", func(c *Config) { c.BenchTime = time.Hour }, "BenchTime"},
		{"empty case name", func(c *Config) { c.Cases = []string{"classic", ""} }, "Cases[1]"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)

			err := cfg.Validate()
			var cerr *ConfigError
			if !errors.As(err, &cerr) {
				t.Fatalf("Validate() error = %v, want *ConfigError", err)
			}
			if cerr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", cerr.Field, tt.wantField)
			}
			if !errors.Is(err, ErrInvalidConfig) {
				t.Error("ConfigError does not unwrap to ErrInvalidConfig")
			}
		})
	}
}

func TestParseConfig(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want Config
	}{
		{
			"empty keeps defaults",
			"",
			DefaultConfig(),
		},
		{
			"all keys",
			"input: /users/a/posts/1\ncases: [classic, hardcoded]\ncount: 3\nbench_time: 500ms\n",
			Config{
				Input:     "/users/a/posts/1",
				Cases:     []string{"classic", "hardcoded"},
				Count:     3,
				BenchTime: 500 * time.Millisecond,
			},
		},
		{
			"empty input is allowed",
			"input: \"\"\n",
			Config{Input: "", Count: 1, BenchTime: time.Second},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig([]byte(tt.yaml))
			if err != nil {
				t.Fatalf("ParseConfig() error = %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"bad duration", "bench_time: soon\n"},
		{"invalid count", "count: 0\n"},
		{"malformed", "count: [1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseConfig([]byte(tt.yaml)); err == nil {
				t.Error("ParseConfig() succeeded")
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bench.yaml")
	if err := os.WriteFile(path, []byte("count: 2\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.Count != 2 {
		t.Errorf("Count = %d, want 2", cfg.Count)
	}

	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfig() succeeded on a missing file")
	}
}
