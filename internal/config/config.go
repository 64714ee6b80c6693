// Package config loads runtime settings from the environment and an
// optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the settings of one solitaire process.
type Config struct {
	Seed      uint64 `env:"KLONDIKE_SEED" envDefault:"0"` // 0 picks a random deal
	FPS       int    `env:"KLONDIKE_FPS" envDefault:"60"`
	LogLevel  string `env:"KLONDIKE_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"KLONDIKE_LOG_FORMAT" envDefault:"text"`
	LogFile   string `env:"KLONDIKE_LOG_FILE" envDefault:"klondike.log"`
	Mouse     bool   `env:"KLONDIKE_MOUSE" envDefault:"true"`
}

// FrameInterval returns the wall time between frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// Validate rejects settings the process cannot run with.
func (c Config) Validate() error {
	if c.FPS < 1 || c.FPS > 240 {
		return fmt.Errorf("fps %d out of range [1, 240]", c.FPS)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	return nil
}

// Load reads the given .env files (default ".env"), ignoring missing ones,
// then parses and validates the environment. Variables already set in the
// environment win over the files.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
