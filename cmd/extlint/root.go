package main

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "extlint",
	Short: "Run external linters and report findings at editor offsets",
	Long: `Runs external static-analysis tools (pylint, flake8, mypy) over source
files or an editor buffer piped on stdin, and maps every reported
line/column back to a character offset in the analyzed text.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags (inherited by all subcommands)
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().Bool("quiet", false, "Suppress all output (exit code only)")
	rootCmd.PersistentFlags().Bool("color", false, "Force color output")
	rootCmd.PersistentFlags().String("config", ".extlint.yaml", "Config file path")

	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(lintersCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(completionCmd)
	rootCmd.AddCommand(versionCmd)
}
