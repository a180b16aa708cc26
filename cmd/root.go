// Package cmd provides the root command and CLI setup for lexmod.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"lexmod.dev/pkg/lexmod/internal/adapter"
	"lexmod.dev/pkg/lexmod/internal/controller"
	"lexmod.dev/pkg/lexmod/internal/domain"
	m "lexmod.dev/pkg/lexmod/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var scriptAdapter adapter.ScriptFileAdapter
var reportStore adapter.ReportStore
var workflow domain.Workflow
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that save run reports.
var reportsOutputDirFlag string

// writeFlag applies edits in place; without it commands print unified diffs.
var writeFlag bool

// excludePatterns is a root-level flag that filters files for applicable commands.
var excludePatterns []string

// parallelFlag sets the number of parallel file workers.
var parallelFlag int

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	scriptAdapter = adapter.NewLocalScriptFileAdapter()
	reportStore = adapter.NewReportStore()
	workflow = domain.NewWorkflow(fsAdapter, scriptAdapter, reportStore, ui)
}

const pathPatternsHelp = `Supports Go-style path patterns:
  - ./...          recursively scan current directory
  - ./src/...      recursively scan src directory
  - ./lib ./src    scan multiple directories
  - app.js         process a single file`

const rootLongDescription = `Lexmod is a scope-aware codemod tool for JavaScript-style sources. It
resolves identifiers through lexical scoping and shadowing, so renaming a
variable never touches property keys, method names, or same-named variables
in other scopes, and pruning removes only declarators that are truly
unreferenced.

` + pathPatternsHelp

const renameLongDescription = `Rename a declared variable and every reference that resolves to it
(default: print diffs; use --write to apply).

` + pathPatternsHelp

const pruneLongDescription = `Remove variable declarators whose declared name is never referenced
(default: print diffs; use --write to apply).

` + pathPatternsHelp

const listLongDescription = `List variable declarators with their scope and reference counts.

` + pathPatternsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "lexmod",
		Short: "Scope-aware JavaScript codemod tool",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger("", verboseFlag || viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	configureRootFlags(cmd)

	return cmd
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"directory for run reports (disabled when empty)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().BoolVarP(&writeFlag, writeFlagName, "w", viper.GetBool(writeFlagName), "apply edits in place instead of printing diffs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(writeFlagName), writeFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().IntVarP(&parallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel file workers")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(parallelFlagName), parallelConfigKey)

	cmd.PersistentFlags().BoolVar(&verboseFlag, verboseFlagName, viper.GetBool(logVerboseKey), "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func parsePaths(args []string) []m.Path {
	paths := make([]m.Path, 0, len(args))
	for _, arg := range args {
		paths = append(paths, m.Path(arg))
	}

	return paths
}

func commonArgs(paths []m.Path) domain.CommonArgs {
	return domain.CommonArgs{
		Paths:   paths,
		Exclude: viper.GetStringSlice(excludeConfigKey),
		Write:   viper.GetBool(writeFlagName),
		Threads: viper.GetInt(parallelConfigKey),
		Reports: m.Path(viper.GetString(outputFlagName)),
	}
}
