package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ledgerlens/ledgerlens/internal/buildinfo"
)

// RepoEnv overrides the default workspace directory.
const RepoEnv = "LEDGERLENS_REPO"

// rootOptions carries the persistent flags shared by every subcommand.
type rootOptions struct {
	repo    string
	verbose bool
	logger  *slog.Logger
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "ledgerlens",
		Short:   "Bank statement import and personal spending analysis",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, _ []string) {
			level := slog.LevelInfo
			if opts.verbose {
				level = slog.LevelDebug
			}
			opts.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
		},
	}

	defaultRepo := os.Getenv(RepoEnv)
	if defaultRepo == "" {
		defaultRepo = "."
	}
	rootCmd.PersistentFlags().StringVar(&opts.repo, "repo", defaultRepo, "workspace directory (env "+RepoEnv+")")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log skipped statement rows and other details")

	rootCmd.AddCommand(
		newInitCommand(),
		newImportCommand(opts),
		newAddCommand(opts),
		newLedgersCommand(opts),
		newSummaryCommand(opts),
		newDistributionCommand(opts),
		newSavingsCommand(opts),
		newForecastCommand(opts),
		newOverviewCommand(opts),
	)

	return rootCmd
}
