// Package config loads process configuration by layering defaults, an
// optional YAML file, and environment variables.
package config

import (
	"errors"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Config contains tool configuration. Everything here shapes display and
// inclusion cutoffs, never the statistics formulas themselves.
type Config struct {
	// LogLevel controls verbosity: debug, info, warn, error.
	LogLevel string `koanf:"log_level"`

	// MinActions is the minimum number of actions for a player to appear
	// in rankings.
	MinActions int `koanf:"min_actions"`

	// MinSetActions is the minimum number of passes for a player to be
	// treated as a setter.
	MinSetActions int `koanf:"min_set_actions"`

	// MainTeam is the default team label for team-centric views.
	MainTeam string `koanf:"main_team"`

	// Thresholds maps skill names to display target percentages.
	Thresholds map[string]float64 `koanf:"thresholds"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		LogLevel:      "info",
		MinActions:    30,
		MinSetActions: 100,
		MainTeam:      "France Avenir",
		Thresholds: map[string]float64{
			"Reception": 40,
			"Block":     20,
			"Attack":    30,
			"Dig":       35,
			"Serve":     25,
		},
	}
}

// Load builds a Config. Order of precedence (low -> high):
//  1. defaults
//  2. YAML file if VBMETRICS_CONFIG is set
//  3. env vars with prefix VBMETRICS_ (e.g. VBMETRICS_MIN_ACTIONS)
func Load() (*Config, error) {
	k := koanf.New(".")

	if path := os.Getenv("VBMETRICS_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, err
		}
	}

	envProvider := env.Provider("VBMETRICS_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "vbmetrics_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, err
	}

	cfg := *Default()
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, err
	}

	if cfg.MinActions < 0 || cfg.MinSetActions < 0 {
		return nil, errors.New("action cutoffs must not be negative")
	}
	return &cfg, nil
}

// Threshold returns the display target for a skill, 0 when unset.
func (c *Config) Threshold(skill string) float64 {
	return c.Thresholds[skill]
}
