package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Generate a default .extlint.yaml config file",
	Long:  `Create a .extlint.yaml configuration file in the current directory with sensible defaults.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		force, _ := cmd.Flags().GetBool("force")

		if _, err := os.Stat(".extlint.yaml"); err == nil && !force {
			return fmt.Errorf(".extlint.yaml already exists (use --force to overwrite)")
		}

		if err := os.WriteFile(".extlint.yaml", []byte(defaultConfig), 0644); err != nil {
			return fmt.Errorf("writing config file: %w", err)
		}

		fmt.Fprintln(cmd.OutOrStdout(), "Created .extlint.yaml")
		return nil
	},
}

const defaultConfig = `# extlint configuration

verbose: false

lint:
  linters:
    - pylint
  paths:
    - "**/*.py"
  python: ""               # interpreter whose directory holds the linters, e.g. .venv/bin/python
  work-dir: .
  timeout: 30s
  strict: false            # exit 1 on any issue, not only errors
  output-format: issues    # issues | summary | json
  print-lines: true
  print-linter-name: true

# Extra arguments per linter, split like a shell command line
settings:
  pylint:
    args: ""
  flake8:
    args: ""
  mypy:
    args: ""
`

func init() {
	initCmd.Flags().Bool("force", false, "Overwrite existing config file")
}
