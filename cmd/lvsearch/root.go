package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvsearch/internal/logging"
)

// app carries state shared by subcommands once flags are parsed.
type app struct {
	logLevel string
	logger   *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{logger: logging.NewNop()}

	root := &cobra.Command{
		Use:           "lvsearch",
		Short:         "Solve search problems with DFS, BFS, UCS and A*",
		Long:          `lvsearch loads a maze layout (.lay) or an explicit graph (.yaml) and searches it for a path to the goal.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := logging.ParseLevel(a.logLevel)
			if err != nil {
				return err
			}
			a.logger = logging.NewWriter(cmd.ErrOrStderr(), level)

			return nil
		},
	}
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")

	root.AddCommand(newSolveCmd(a), newGenerateCmd(a), newStrategiesCmd())

	return root
}
