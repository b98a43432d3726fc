package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"modelgen/internal/config"
)

// NewRootCmd creates the modelgen root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:          "modelgen",
		Short:        "Generate model interface views for marked structs",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringP("config", "c", "", "Path to the config file (default modelgen.yaml when present)")
	root.PersistentFlags().BoolP("verbose", "v", false, "Show note and debug diagnostics")

	root.AddCommand(
		NewGenerateCommand(),
		NewInspectCommand(),
		NewInitCommand(),
		NewVersionCommand(),
	)

	return root
}

// loadConfig resolves the effective config: an explicit --config path must
// load, the default path loads when present, anything else falls back to
// the built-in defaults.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	var cfg *config.Config

	switch {
	case path != "":
		cfg, err = config.LoadFile(path)
	case fileExists(config.DefaultPath):
		cfg, err = config.LoadFile(config.DefaultPath)
	default:
		cfg = config.Default()
	}

	if err != nil {
		return nil, err
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// newLogger builds the diagnostic logger from the config level; the
// --verbose flag forces the debug level.
func newLogger(cmd *cobra.Command, cfg *config.Config) (*log.Logger, error) {
	logger := log.New(cmd.ErrOrStderr())
	logger.SetReportTimestamp(false)

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}

	logger.SetLevel(level)

	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		logger.SetLevel(log.DebugLevel)
	}

	return logger, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
