package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds all configuration for the rune engine
type Config struct {
	Runes RunesConfig
	Redis RedisConfig
}

// RunesConfig holds the tunable defaults of the rune actions.
// Ranges are in feet; the battle grid measures FeetPerStep feet per square.
type RunesConfig struct {
	TraceRange  int `env:"RUNESMITH_TRACE_RANGE"   envDefault:"30"`
	InvokeRange int `env:"RUNESMITH_INVOKE_RANGE"  envDefault:"30"`
	FeetPerStep int `env:"RUNESMITH_FEET_PER_STEP" envDefault:"5"`
}

// RedisConfig holds Redis-specific configuration. An empty URL means the
// in-memory etching repository is used.
type RedisConfig struct {
	URL string `env:"REDIS_URL"`
	DB  int    `env:"REDIS_DB" envDefault:"0"`
}

// Default returns the configuration used when nothing is set in the environment
func Default() *Config {
	return &Config{
		Runes: RunesConfig{
			TraceRange:  30,
			InvokeRange: 30,
			FeetPerStep: 5,
		},
	}
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate rejects ranges the action factories can't build target specs from
func (c *Config) Validate() error {
	if c.Runes.FeetPerStep < 1 {
		return fmt.Errorf("RUNESMITH_FEET_PER_STEP must be at least 1, got %d", c.Runes.FeetPerStep)
	}
	if c.TraceSteps() < 1 {
		return fmt.Errorf("RUNESMITH_TRACE_RANGE must be at least %d feet, got %d", c.Runes.FeetPerStep, c.Runes.TraceRange)
	}
	if c.InvokeSteps() < 1 {
		return fmt.Errorf("RUNESMITH_INVOKE_RANGE must be at least %d feet, got %d", c.Runes.FeetPerStep, c.Runes.InvokeRange)
	}
	return nil
}

// StepsForFeet converts a distance in feet to whole grid steps, rounding down
func (c *Config) StepsForFeet(feet int) int {
	return feet / c.Runes.FeetPerStep
}

// TraceSteps is the default Trace range in grid steps
func (c *Config) TraceSteps() int {
	return c.StepsForFeet(c.Runes.TraceRange)
}

// InvokeSteps is the default Invoke range in grid steps
func (c *Config) InvokeSteps() int {
	return c.StepsForFeet(c.Runes.InvokeRange)
}
