package cli

import (
	"fmt"
	"math"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"

	"github.com/katalvlaran/lielath/matrix"
)

// Config holds the settings that may come from a TOML file.
type Config struct {
	Tolerance float64 `toml:"tolerance"`
	Workers   int     `toml:"workers"`
	LogLevel  string  `toml:"log_level"`
}

// defaultConfig returns the settings used when no file or flag overrides them.
// Workers = 0 means the solver default.
func defaultConfig() Config {
	return Config{Tolerance: matrix.DefaultTolerance, LogLevel: "info"}
}

// loadConfig reads path over the defaults. An empty path returns the defaults.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config: %w", err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if c.Tolerance < 0 || math.IsNaN(c.Tolerance) || math.IsInf(c.Tolerance, 0) {
		return fmt.Errorf("config: tolerance %g must be finite and >= 0", c.Tolerance)
	}
	if c.Workers < 0 {
		return fmt.Errorf("config: workers %d must be >= 0", c.Workers)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("config: log_level: %w", err)
	}
	return nil
}

// level returns the configured log level; verbose forces debug.
func (c Config) level(verbose bool) log.Level {
	if verbose {
		return log.DebugLevel
	}
	l, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return log.InfoLevel
	}
	return l
}
