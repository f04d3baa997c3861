package utils

import (
	"encoding/json"
	"os"
	"time"

	"github.com/pkg/errors"

	"github.com/sheikhrachel/go-life/rules"
)

// MaxTickRate is the fastest tick rate with a non-zero interval
const MaxTickRate = int(time.Second)

// Config holds the configuration for the game
type Config struct {
	Width          int     `json:"width"`
	Height         int     `json:"height"`
	Probability    float64 `json:"probability"`
	Seed           uint64  `json:"seed"`
	TickRate       int     `json:"tickrate"`
	Load           string  `json:"load"`
	Save           string  `json:"save"`
	Interactive    bool    `json:"interactive"`
	ShowStats      bool    `json:"show_stats"`
	MaxGenerations int     `json:"max_generations"` // 0 runs forever

	rules.Thresholds
}

// DefaultConfig returns sensible defaults
func DefaultConfig() Config {
	return Config{
		Width:       25,
		Height:      25,
		Probability: 0.5,
		TickRate:    15,
		Thresholds:  rules.Conway,
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

	return config, nil
}

// Validate rejects values the driver cannot run with
func (c Config) Validate() error {
	if c.TickRate <= 0 || c.TickRate > MaxTickRate {
		return errors.Errorf("[Validate] tickrate must be within [1, %d], got %d", MaxTickRate, c.TickRate)
	}
	if c.Probability < 0 || c.Probability > 1 {
		return errors.Errorf("[Validate] probability must be within [0, 1], got %v", c.Probability)
	}
	if c.Load == "" && (c.Width <= 0 || c.Height <= 0) {
		return errors.Errorf("[Validate] board must be at least 1x1, got %dx%d", c.Width, c.Height)
	}
	if c.MaxGenerations < 0 {
		return errors.Errorf("[Validate] max_generations must not be negative, got %d", c.MaxGenerations)
	}
	return nil
}

// TickInterval is the pause between generations
func (c Config) TickInterval() time.Duration {
	return time.Second / time.Duration(c.TickRate)
}
