package commands

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/classify"
	"github.com/ledgerlens/ledgerlens/internal/config"
)

func newInitCommand() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new ledgerlens workspace",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, format)
		},
	}

	cmd.Flags().StringVar(&format, "config-format", "yaml", "config file format (yaml or toml)")

	return cmd
}

func runInit(out io.Writer, dir, format string) error {
	var configName string
	switch format {
	case "yaml":
		configName = config.FileName
	case "toml":
		configName = "ledgerlens.toml"
	default:
		return fmt.Errorf("unsupported config format %q", format)
	}

	if existing, err := config.Find(dir); err == nil {
		return fmt.Errorf("workspace already initialized: %s exists", existing)
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	// Create directory structure.
	dirs := []string{
		"rules",
		"logs",
		"ledgers",
		"import",
		filepath.Join("import", "processed"),
	}
	for _, d := range dirs {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	if err := config.Save(filepath.Join(dir, configName), config.Default()); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Seed the rule table so it can be edited in place.
	if err := classify.SaveRules(filepath.Join(dir, rulesFile), classify.DefaultRules()); err != nil {
		return fmt.Errorf("writing rules: %w", err)
	}

	fmt.Fprintf(out, "Initialized ledgerlens workspace at %s\n", dir)
	return nil
}
