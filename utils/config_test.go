package utils

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pkg/errors"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config is invalid: %v", err)
	}
	if c.Rows != 25 || c.Cols != 25 || c.Interval != 100*time.Millisecond {
		t.Fatalf("unexpected defaults: %+v", c)
	}
}

func TestLoadConfigOverridesDefaults(t *testing.T) {
	path := writeConfig(t, `{"rows": 10, "alive_probability": 0.5, "interval": 50000000}`)

	c, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if c.Rows != 10 || c.AliveProbability != 0.5 || c.Interval != 50*time.Millisecond {
		t.Fatalf("file values not applied: %+v", c)
	}
	if c.Cols != 25 {
		t.Fatalf("missing values must keep defaults, got cols=%d", c.Cols)
	}
}

func TestLoadConfigErrors(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("missing file err = %v, want os.ErrNotExist", err)
	}

	if _, err := LoadConfig(writeConfig(t, `{"rows":`)); err == nil {
		t.Fatal("malformed JSON must fail")
	}

	if _, err := LoadConfig(writeConfig(t, `{"cols": 0}`)); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("zero columns err = %v, want ErrInvalidConfig", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"negative rows", func(c *Config) { c.Rows = -1 }},
		{"probability above one", func(c *Config) { c.AliveProbability = 1.5 }},
		{"negative probability", func(c *Config) { c.AliveProbability = -0.1 }},
		{"negative interval", func(c *Config) { c.Interval = -time.Second }},
		{"negative max generations", func(c *Config) { c.MaxGenerations = -3 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := DefaultConfig()
			tt.modify(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("err = %v, want ErrInvalidConfig", err)
			}
		})
	}
}

func TestStatsUpdate(t *testing.T) {
	s := NewStats()
	s.Update(1, 100, 100*time.Millisecond)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 10 {
		t.Fatalf("unexpected stats after first update: %+v", s)
	}

	s.Update(2, 200, 0)
	if s.AveragePopulation != 110 {
		t.Fatalf("moving average = %v, want 110", s.AveragePopulation)
	}
	if s.TotalGenerations != 2 || s.GenerationsPerSecond != 10 {
		t.Fatalf("zero duration must keep the last rate: %+v", s)
	}
}
