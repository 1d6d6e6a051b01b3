package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/takemikami/extlint"
	"github.com/takemikami/extlint/internal/report"
)

var lintersCmd = &cobra.Command{
	Use:   "linters",
	Short: "List supported linters and where their executables are",
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		python := getStringWithFallback("python", "lint.python", "")
		registry := extlint.NewRegistry()
		out := cmd.OutOrStdout()
		useColors := getBoolWithFallback("color", "color", false)

		for _, name := range registry.Names() {
			path, err := extlint.ResolveCommand(name, python)
			if err != nil {
				fmt.Fprintf(out, "%-8s %s\n", name, report.RenderStyle(report.StyleYellow, "not found", useColors))
				continue
			}
			fmt.Fprintf(out, "%-8s %s\n", name, path)
		}
		return nil
	},
}

func init() {
	lintersCmd.Flags().String("python", "", "Python interpreter whose directory holds the linters")
}
