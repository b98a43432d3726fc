package config

import (
	"fmt"
	"slices"
)

// DefaultPath is where the CLI looks for a config file when no
// --config flag is given.
const DefaultPath = "modelgen.yaml"

// Config is the root of a modelgen YAML configuration file.
// This is the reviewed, checked-in generation configuration.
type Config struct {
	// Version of the config schema (for future compatibility).
	Version string `yaml:"version,omitempty"`

	// Packages lists the package patterns scanned for marked structs,
	// in the notation accepted by go list (e.g. "./..." or import paths).
	Packages []string `yaml:"packages,omitempty"`

	// Log controls diagnostic output.
	Log LogConfig `yaml:"log,omitempty"`
}

// LogConfig controls how diagnostics are printed.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `yaml:"level,omitempty"`
}

var logLevels = []string{"debug", "info", "warn", "error"}

// Validate checks the config for values the generator cannot work with.
func (c *Config) Validate() error {
	if c.Version != "1" {
		return fmt.Errorf("unsupported config version %q", c.Version)
	}

	if len(c.Packages) == 0 {
		return fmt.Errorf("no package patterns configured")
	}

	if !slices.Contains(logLevels, c.Log.Level) {
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}

	return nil
}
