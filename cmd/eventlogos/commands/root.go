// Package commands defines the eventlogos command line.
//
// The command takes no argument nor flag: it reads the logos from
// ./event-logos/source and writes the gold, silver and bronze variants
// under ./event-logos/svg and ./event-logos/png.
package commands

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/benoitkugler/eventlogos/logos"
)

func newRoot(logger *slog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:           "eventlogos",
		Short:         "Render the gold, silver and bronze variants of event logos",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			wd, err := os.Getwd()
			if err != nil {
				return err
			}
			g := logos.Generator{
				Layout: logos.Layout{Base: filepath.Join(wd, logos.DefaultBase)},
				Logger: logger,
			}
			return g.Run()
		},
	}
}

// Execute runs the command, logging the error which aborted it, if any.
func Execute() error {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	err := newRoot(logger).Execute()
	if err != nil {
		logger.Error("event logo generation failed", "err", err)
	}
	return err
}
