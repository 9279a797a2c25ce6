package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"
)

// ErrInvalidConfig is returned when a configuration value is out of range
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the configuration for the game
type Config struct {
	Rows             int           `json:"rows"`
	Cols             int           `json:"cols"`
	Interval         time.Duration `json:"interval"`
	AliveProbability float64       `json:"alive_probability"`
	Seed             int64         `json:"seed"`
	MaxGenerations   int           `json:"max_generations"`
	StopWhenStagnant bool          `json:"stop_when_stagnant"`
	HistorySize      int           `json:"history_size"`
	UseMemoryPool    bool          `json:"use_memory_pool"`
	Interactive      bool          `json:"interactive"`
	RandomStart      bool          `json:"random_start"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Rows:             25,
		Cols:             25,
		Interval:         100 * time.Millisecond,
		AliveProbability: 0.3, // alive when a uniform draw exceeds 0.7
		MaxGenerations:   0,   // unlimited
		HistorySize:      5,
		UseMemoryPool:    true,
		Interactive:      false,
		RandomStart:      true,
	}
}

// LoadConfig loads configuration from JSON file
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	if err = config.Validate(); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] file: %+v", filename)
	}

	return config, nil
}

// Validate checks every value is usable by the engine and the run loop
func (c Config) Validate() error {
	switch {
	case c.Rows <= 0 || c.Cols <= 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] grid dimensions must be positive, got %dx%d", c.Rows, c.Cols)
	case c.AliveProbability < 0 || c.AliveProbability > 1:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] alive probability must be within [0,1], got %v", c.AliveProbability)
	case c.Interval < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] interval must not be negative, got %v", c.Interval)
	case c.MaxGenerations < 0:
		return errors.Wrapf(ErrInvalidConfig, "[Validate] max generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}
