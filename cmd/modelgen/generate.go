package main

import (
	"github.com/spf13/cobra"

	"modelgen/internal/common"
	"modelgen/internal/diag"
	"modelgen/internal/driver"
	"modelgen/internal/emit"
	"modelgen/internal/inspect"
	"modelgen/internal/render"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "generate [packages...]",
		Short: "Generate model interfaces for marked structs",
		Long: `Scan the configured packages for structs marked @model and write a
<Type>_Model interface file next to each marked struct. Package patterns
given as arguments override the configured ones.`,
		Args: cobra.ArbitraryArgs,
		RunE: runGenerate,
	}
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	patterns := cfg.Packages
	if len(args) > 0 {
		patterns = args
	}

	logger, err := newLogger(cmd, cfg)
	if err != nil {
		return err
	}

	scope, err := inspect.NewInspector().Load(patterns...)
	if err != nil {
		return err
	}

	d := driver.New(render.NewEngine(), emit.OSFiler{}, diag.NewLogReporter(logger))

	files, err := d.Run(scope)
	if err != nil {
		return err
	}

	if common.IsEmpty(files) {
		logger.Warn("no marked structs found", "patterns", patterns)
		return nil
	}

	for _, f := range files {
		logger.Debug("wrote file", "path", f.Path)
	}

	logger.Info("generation finished", "files", len(files))

	return nil
}
