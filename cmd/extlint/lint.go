package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/takemikami/extlint"
	"github.com/takemikami/extlint/internal/report"
	"go.uber.org/zap"
)

var lintCmd = &cobra.Command{
	Use:   "lint [files or patterns...]",
	Short: "Run linters and report problems",
	Long: `Run the configured linters over files (or doublestar patterns such as
"src/**/*.py") and report every problem at its position in the file.

With --stdin the text is read from standard input, the way an editor passes
an unsaved buffer; --stdin-filename names the file it belongs to.`,
	PreRunE: func(cmd *cobra.Command, _ []string) error {
		return loadConfig(cmd)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := buildLintConfig()

		logger, err := newLogger(cfg.Verbose, cfg.Quiet)
		if err != nil {
			return err
		}
		defer func() { _ = logger.Sync() }()

		result, err := runLint(cmd.Context(), cfg, args, cmd.InOrStdin(), logger)
		if err != nil {
			return fmt.Errorf("lint failed: %w", err)
		}

		if !cfg.Quiet {
			format := report.DetermineOutputFormat(cfg.OutputFormat, cfg.Quiet)
			if err := report.WriteOutput(cmd.OutOrStdout(), result, format, cfg.Report); err != nil {
				return err
			}
		}

		if code := exitCode(result, cfg.Strict); code != 0 {
			return &exitError{code: code}
		}
		return nil
	},
}

func init() {
	f := lintCmd.Flags()
	f.StringSlice("linters", defaultLinters, "Linters to run: pylint|flake8|mypy")
	f.String("python", "", "Python interpreter whose directory holds the linters")
	f.String("work-dir", ".", "Directory the linters run in")
	f.Duration("timeout", 0, "Per-file linter timeout (default 30s)")
	f.Bool("stdin", false, "Read the text to analyze from standard input")
	f.String("stdin-filename", "", "File name of the text read with --stdin")
	f.String("output-format", "", "Output format: issues|summary|json")
	f.Bool("strict", false, "Exit 1 on any issue (CI mode)")
	f.Bool("print-lines", true, "Show source lines with issues")
	f.Bool("print-linter-name", true, "Show (linter) suffix on issues")
}

// target is one document to analyze
type target struct {
	path string
	body string
}

// runLint analyzes every target with every available linter, one at a time.
// Failed passes are recorded in the result and do not stop the run.
func runLint(ctx context.Context, cfg lintConfig, args []string, stdin io.Reader, logger *zap.SugaredLogger) (*report.Result, error) {
	analyzers, skipped, err := buildAnalyzers(cfg, extlint.NewRegistry(), logger)
	if err != nil {
		return nil, err
	}

	result := &report.Result{Skipped: skipped}
	for _, a := range analyzers {
		result.Linters = append(result.Linters, a.Linter.Name)
	}
	if len(analyzers) == 0 {
		logger.Warnw("No linter available, nothing to do", "skipped", skipped)
	}

	targets, failures, err := loadTargets(cfg, args, stdin, logger)
	if err != nil {
		return nil, err
	}
	result.Failures = append(result.Failures, failures...)
	result.FilesScanned = len(targets)

	for _, t := range targets {
		for _, a := range analyzers {
			problems, err := analyze(ctx, a, t, cfg.Timeout)
			if err != nil {
				result.Failures = append(result.Failures, err.Error())
				continue
			}
			result.Problems = append(result.Problems, problems...)
		}
	}

	return result, nil
}

func analyze(ctx context.Context, a *extlint.Analyzer, t target, timeout time.Duration) ([]extlint.Problem, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}
	return a.Analyze(ctx, t.path, t.body)
}

// buildAnalyzers resolves each configured linter. Linters whose executable
// cannot be found are skipped, mirroring an editor that has no tool to run.
func buildAnalyzers(cfg lintConfig, registry *extlint.Registry, logger *zap.SugaredLogger) ([]*extlint.Analyzer, []string, error) {
	var (
		analyzers []*extlint.Analyzer
		skipped   []string
	)
	for _, name := range cfg.Linters {
		linter, ok := registry.Lookup(name)
		if !ok {
			return nil, nil, fmt.Errorf("unknown linter %q (available: %s)",
				name, strings.Join(registry.Names(), ", "))
		}

		command, err := extlint.ResolveCommand(name, cfg.Python)
		if errors.Is(err, extlint.ErrToolNotFound) {
			logger.Warnw("Linter not found, skipping", "linter", name, "python", cfg.Python)
			skipped = append(skipped, name)
			continue
		} else if err != nil {
			return nil, nil, err
		}

		args, err := extlint.SplitArgs(linterArgs(name))
		if err != nil {
			return nil, nil, fmt.Errorf("settings for %s: %w", name, err)
		}

		a := extlint.NewAnalyzer(linter, command, logger)
		a.Args = args
		a.WorkDir = cfg.WorkDir
		analyzers = append(analyzers, a)

		logger.Debugw("Linter resolved", "linter", name, "command", command, "args", args)
	}
	return analyzers, skipped, nil
}

// loadTargets reads the documents to analyze: the stdin buffer, or every
// file matched by args (falling back to the configured paths).
func loadTargets(cfg lintConfig, args []string, stdin io.Reader, logger *zap.SugaredLogger) ([]target, []string, error) {
	if cfg.Stdin {
		if cfg.StdinFilename == "" {
			return nil, nil, errors.New("--stdin requires --stdin-filename")
		}
		body, err := io.ReadAll(stdin)
		if err != nil {
			return nil, nil, fmt.Errorf("reading stdin: %w", err)
		}
		return []target{{path: cfg.StdinFilename, body: string(body)}}, nil, nil
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Paths
	}
	files, err := extlint.ExpandPaths(patterns)
	if err != nil {
		return nil, nil, err
	}

	var (
		targets  []target
		failures []string
	)
	for _, file := range files {
		body, err := os.ReadFile(file)
		if err != nil {
			logger.Errorw("Cannot read file", "file", file, "error", err)
			failures = append(failures, fmt.Sprintf("reading %s: %v", file, err))
			continue
		}
		targets = append(targets, target{path: file, body: string(body)})
	}
	return targets, failures, nil
}

// exitCode applies the soft gate: errors fail the run, and in strict mode
// any problem or failed pass does too.
func exitCode(result *report.Result, strict bool) int {
	errCount, _ := result.Counts()
	if strict {
		if len(result.Problems) > 0 || len(result.Failures) > 0 {
			return 1
		}
		return 0
	}
	if errCount > 0 {
		return 1
	}
	return 0
}
