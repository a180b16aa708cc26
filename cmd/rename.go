package cmd

import (
	"github.com/spf13/cobra"

	"lexmod.dev/pkg/lexmod/internal/domain"
)

const requireFlagName = "require"

var renameRequireFlag string

// renameCmd represents the rename command.
var renameCmd = newRenameCmd()

func newRenameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rename OLD NEW [paths...]",
		Short: "Rename a variable and all references that resolve to it",
		Long:  renameLongDescription,
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			paths := parsePaths(args[2:])

			return workflow.Rename(cmd.Context(), domain.RenameArgs{
				CommonArgs:    commonArgs(paths),
				OldName:       args[0],
				NewName:       args[1],
				RequireModule: renameRequireFlag,
			})
		},
	}

	configureRenameFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(renameCmd)
}

func configureRenameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&renameRequireFlag, requireFlagName, "", "only rename variables initialized from require(\"MODULE\")")
}
