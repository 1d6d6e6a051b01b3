package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/takemikami/extlint/internal/report"
)

var k = koanf.New(".")

// defaultLinters run when neither flags nor config name any.
var defaultLinters = []string{"pylint"}

// loadConfig loads configuration with precedence: flags > env > file > defaults.
// It must be called after cobra parses flags (in PreRunE or RunE).
func loadConfig(cmd *cobra.Command) error {
	configPath, _ := cmd.Flags().GetString("config")
	if configPath == "" {
		configPath = ".extlint.yaml"
	}

	if err := loadConfigFromPath(configPath); err != nil {
		return err
	}

	// CLI flags (highest precedence). Unset flags are skipped so their
	// defaults never shadow values from the file or environment.
	flags := cmd.Flags()
	if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
		if !f.Changed {
			return "", nil
		}
		return f.Name, posflag.FlagVal(flags, f)
	}), nil); err != nil {
		return fmt.Errorf("loading command flags: %w", err)
	}

	return nil
}

// loadConfigFromPath loads configuration from a file and environment variables.
// This is separated from loadConfig to allow testing without a cobra command.
func loadConfigFromPath(configPath string) error {
	if _, err := os.Stat(configPath); err == nil {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return fmt.Errorf("loading config file %s: %w", configPath, err)
		}
	}

	// Environment variables (EXTLINT_* prefix)
	if err := k.Load(env.Provider("EXTLINT_", ".", func(s string) string {
		// EXTLINT_LINT_STRICT -> lint.strict
		// EXTLINT_SETTINGS_PYLINT_ARGS -> settings.pylint.args
		return strings.ReplaceAll(
			strings.ToLower(strings.TrimPrefix(s, "EXTLINT_")),
			"_", ".",
		)
	}), nil); err != nil {
		return fmt.Errorf("loading environment variables: %w", err)
	}

	return nil
}

// lintConfig is the resolved configuration of a lint run
type lintConfig struct {
	Linters       []string
	Paths         []string
	Python        string // interpreter whose bin directory holds the linters
	WorkDir       string
	Timeout       time.Duration
	Stdin         bool
	StdinFilename string
	OutputFormat  string
	Strict        bool
	Quiet         bool
	Verbose       bool
	Report        report.Options
}

// buildLintConfig constructs the lint configuration from koanf state.
func buildLintConfig() lintConfig {
	linters := defaultLinters
	if l := k.Strings("linters"); len(l) > 0 {
		linters = l
	} else if l := k.Strings("lint.linters"); len(l) > 0 {
		linters = l
	}

	var paths []string
	if p := k.Strings("lint.paths"); len(p) > 0 {
		paths = p
	} else {
		paths = []string{"**/*.py"}
	}

	return lintConfig{
		Linters:       linters,
		Paths:         paths,
		Python:        getStringWithFallback("python", "lint.python", ""),
		WorkDir:       getStringWithFallback("work-dir", "lint.work-dir", "."),
		Timeout:       getDurationWithFallback("timeout", "lint.timeout", 30*time.Second),
		Stdin:         getBoolWithFallback("stdin", "lint.stdin", false),
		StdinFilename: getStringWithFallback("stdin-filename", "lint.stdin-filename", ""),
		OutputFormat:  getStringWithFallback("output-format", "lint.output-format", ""),
		Strict:        getBoolWithFallback("strict", "lint.strict", false),
		Quiet:         getBoolWithFallback("quiet", "quiet", false),
		Verbose:       getBoolWithFallback("verbose", "verbose", false),
		Report: report.Options{
			PrintIssuedLines: getBoolWithFallback("print-lines", "lint.print-lines", true),
			PrintLinterName:  getBoolWithFallback("print-linter-name", "lint.print-linter-name", true),
			UseColors:        getBoolWithFallback("color", "color", false),
		},
	}
}

// linterArgs returns the extra argument string configured for a linter.
func linterArgs(name string) string {
	return k.String("settings." + name + ".args")
}

// getStringWithFallback checks the flag key first, then the config file key, then returns the default.
func getStringWithFallback(flagKey, configKey, defaultVal string) string {
	if v := k.String(flagKey); v != "" {
		return v
	}
	if v := k.String(configKey); v != "" {
		return v
	}
	return defaultVal
}

// getBoolWithFallback checks the flag key first, then the config file key, then returns the default.
func getBoolWithFallback(flagKey, configKey string, defaultVal bool) bool {
	if k.Exists(flagKey) {
		return k.Bool(flagKey)
	}
	if k.Exists(configKey) {
		return k.Bool(configKey)
	}
	return defaultVal
}

// getDurationWithFallback checks the flag key first, then the config file key, then returns the default.
func getDurationWithFallback(flagKey, configKey string, defaultVal time.Duration) time.Duration {
	if k.Exists(flagKey) {
		return k.Duration(flagKey)
	}
	if k.Exists(configKey) {
		return k.Duration(configKey)
	}
	return defaultVal
}
