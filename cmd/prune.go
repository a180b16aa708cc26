package cmd

import (
	"github.com/spf13/cobra"

	"lexmod.dev/pkg/lexmod/internal/domain"
)

// pruneCmd represents the prune command.
var pruneCmd = newPruneCmd()

func newPruneCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "prune [paths...]",
		Short: "Remove unreferenced variable declarators",
		Long:  pruneLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Prune(cmd.Context(), domain.PruneArgs{
				CommonArgs: commonArgs(parsePaths(args)),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(pruneCmd)
}
