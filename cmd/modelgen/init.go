package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"modelgen/internal/config"
)

// NewInitCommand creates the init command.
func NewInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter config file",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, _ []string) error {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return err
	}

	if path == "" {
		path = config.DefaultPath
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	if err := config.WriteFile(config.Default(), path); err != nil {
		return err
	}

	cmd.Printf("wrote %s\n", path)

	return nil
}
