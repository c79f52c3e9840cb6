package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

const version = "0.1.0"

// Exit codes, stable for scripting and hooks.
const (
	ExitSuccess      = 0
	ExitNoChanges    = 1
	ExitUsageError   = 2
	ExitGitError     = 3
	ExitRuntimeError = 4
)

var rootCmd = &cobra.Command{
	Use:   "draftmsg",
	Short: "Draft commit messages from staged changes",
	Long: "Draftmsg scans the staged diff, classifies it by keyword, and\n" +
		"suggests a conventional commit message.",
	RunE: func(cmd *cobra.Command, args []string) error {
		// Zero-argument invocation behaves like `draftmsg suggest`.
		return runSuggest(cmd, args)
	},
}

// exitCode is set by command handlers to control the process exit code.
var exitCode = ExitSuccess

// Run executes the root command and returns an exit code.
func Run() int {
	rootCmd.AddCommand(suggestCmd)
	rootCmd.AddCommand(hookCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)

	addSuggestFlags(rootCmd)

	if err := rootCmd.Execute(); err != nil {
		// Cobra already prints the error
		return ExitUsageError
	}

	return exitCode
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print draftmsg version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(os.Stdout, "draftmsg version %s\n", version)
	},
}
