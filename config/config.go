// Package config handles loading of model inputs and runtime settings.
package config

import (
	"math"
	"time"

	"github.com/echoflaresat/eratosthenes/errors"
	"github.com/echoflaresat/eratosthenes/frames"
	"github.com/echoflaresat/eratosthenes/scene"
)

// Config holds all settings. Model values are optional; absent ones take the
// defaults of scene.Resolve.
type Config struct {
	Model     scene.Input     `yaml:"model" toml:"model"`
	Animation AnimationConfig `yaml:"animation" toml:"animation"`
	Logging   LoggingConfig   `yaml:"logging" toml:"logging"`
}

// AnimationConfig holds the tick source and batch settings.
type AnimationConfig struct {
	Step      float64       `yaml:"step" toml:"step"`         // radians per tick
	Interval  time.Duration `yaml:"interval" toml:"interval"` // 0 runs ticks back to back
	Workers   int           `yaml:"workers" toml:"workers"`   // 0 means one per CPU
	CacheSize int           `yaml:"cache_size" toml:"cache_size"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level" toml:"level"`
	LogFile string `yaml:"log_file" toml:"log_file"`
}

// Default returns a Config with default values.
func Default() *Config {
	return &Config{
		Animation: AnimationConfig{
			Step:      frames.DefaultStep,
			Interval:  frames.DefaultInterval,
			Workers:   0,
			CacheSize: 256,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Snapshot resolves the model section into validated inputs.
func (c *Config) Snapshot() (scene.InputSnapshot, error) {
	return scene.Resolve(c.Model)
}

// Validate checks every section, including the model inputs.
func (c *Config) Validate() error {
	a := c.Animation
	if math.IsNaN(a.Step) || math.IsInf(a.Step, 0) {
		return errors.New(errors.ErrCodeInvalidConfig, "animation.step %v must be finite", a.Step)
	}
	if a.Interval < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "animation.interval %v must not be negative", a.Interval)
	}
	if a.Workers < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "animation.workers %d must not be negative", a.Workers)
	}
	if a.CacheSize <= 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "animation.cache_size %d must be positive", a.CacheSize)
	}
	if _, err := c.Snapshot(); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "model")
	}
	return nil
}
