// Package config holds the small set of process-wide settings that would
// otherwise be scattered global state: where heuristic tables live, how
// deep the solver will search before giving up, and how verbose logging is.
//
// Values are populated from cobra/pflag flags in internal/cli, falling back
// to environment variables and then to the defaults below. There is no
// config file format here: the settings surface is small enough that a
// dedicated file-based layer (viper and friends) would add a dependency
// without adding capability.
package config

import (
	"os"
	"strconv"
)

// Config is the resolved set of run-time settings.
type Config struct {
	// HeuristicsDir is the directory heuristic table files are read from
	// and written to, e.g. "heuristics/corners.ht".
	HeuristicsDir string

	// MaxDepth caps how many IDDFS rounds the solver will attempt before
	// reporting failure. The Mixup Cube's diameter is well within normal
	// limits, so this mainly guards against malformed input cubes.
	MaxDepth int

	// LogLevel is a logrus level name: "debug", "info", "warn", "error".
	LogLevel string
}

// Default values, overridable by environment variable and then by explicit
// flags in internal/cli.
const (
	DefaultHeuristicsDir = "heuristics"
	DefaultMaxDepth      = 20
	DefaultLogLevel      = "info"
)

// FromEnvironment builds a Config from MIXUPCUBE_* environment variables,
// falling back to defaults for anything unset or malformed.
func FromEnvironment() Config {
	cfg := Config{
		HeuristicsDir: DefaultHeuristicsDir,
		MaxDepth:      DefaultMaxDepth,
		LogLevel:      DefaultLogLevel,
	}

	if v := os.Getenv("MIXUPCUBE_HEURISTICS_DIR"); v != "" {
		cfg.HeuristicsDir = v
	}
	if v := os.Getenv("MIXUPCUBE_MAX_DEPTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MaxDepth = n
		}
	}
	if v := os.Getenv("MIXUPCUBE_LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	return cfg
}
