package config

import (
	"fmt"
	"strings"
)

// Config holds process-level settings for the teenlife binary. Flags given
// on the command line take precedence over these values.
type Config struct {
	Seed     int64  `env:"TEENLIFE_SEED" envDefault:"0"`
	LogLevel string `env:"TEENLIFE_LOG_LEVEL" envDefault:"info"`
	LogFile  string `env:"TEENLIFE_LOG_FILE"`
	NoColor  bool   `env:"TEENLIFE_NO_COLOR" envDefault:"false"`
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(cfg.LogLevel))
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Seed < 0 {
		return fmt.Errorf("seed must be >= 0, got %d", c.Seed)
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("unknown log level %q", c.LogLevel)
	}
	return nil
}
