package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"lexmod.dev/pkg/lexmod/internal/domain"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [paths...]",
		Short: "List variable declarators with scope and reference counts",
		Long:  listLongDescription,
		RunE: func(cmd *cobra.Command, args []string) error {
			return workflow.Survey(cmd.Context(), domain.SurveyArgs{
				Paths:   parsePaths(args),
				Exclude: viper.GetStringSlice(excludeConfigKey),
				Threads: viper.GetInt(parallelConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
