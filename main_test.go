package main

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/sheikhrachel/go-gol/utils"
)

func TestCLIOptionsApply(t *testing.T) {
	config := utils.DefaultConfig()
	cliOptions{
		rows:     10,
		interval: 50 * time.Millisecond,
		empty:    true,
		noPool:   true,
	}.apply(&config)

	if config.Rows != 10 || config.Cols != 25 {
		t.Fatalf("dimensions %dx%d, want 10x25", config.Rows, config.Cols)
	}
	if config.Interval != 50*time.Millisecond {
		t.Fatalf("interval %v, want 50ms", config.Interval)
	}
	if config.RandomStart || config.UseMemoryPool {
		t.Fatalf("boolean flags not applied: %+v", config)
	}
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	opts := cliOptions{configPath: filepath.Join(t.TempDir(), "missing.json"), cols: 30}

	config, err := loadConfig(opts)
	if err != nil {
		t.Fatalf("loadConfig: %v", err)
	}
	if config.Rows != 25 || config.Cols != 30 {
		t.Fatalf("dimensions %dx%d, want 25x30", config.Rows, config.Cols)
	}

	opts.aliveProbability = 2
	if _, err = loadConfig(opts); err == nil {
		t.Fatal("an out of range probability flag must be rejected")
	}
}
