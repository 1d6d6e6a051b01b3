package extlint

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Analyzer runs one linter over a document and reports problems at
// character offsets in that document.
type Analyzer struct {
	Linter  Linter
	Command string   // resolved executable, see ResolveCommand
	Args    []string // extra user arguments, placed before the target arguments
	WorkDir string   // project base path the tool runs in
	Runner  Runner
	Logger  *zap.SugaredLogger
}

// NewAnalyzer returns an analyzer that executes linters as subprocesses.
func NewAnalyzer(linter Linter, command string, logger *zap.SugaredLogger) *Analyzer {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Analyzer{
		Linter:  linter,
		Command: command,
		Runner:  ExecRunner{},
		Logger:  logger.With("linter", linter.Name),
	}
}

// Analyze runs the linter over body, the current text of filePath.
//
// If the linter cannot be run the failure is logged and returned, and no
// problems are reported for the file. There is no retry.
func (a *Analyzer) Analyze(ctx context.Context, filePath, body string) ([]Problem, error) {
	logger := a.Logger
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	runner := a.Runner
	if runner == nil {
		runner = ExecRunner{}
	}

	translator := NewOffsetTranslator(body)

	displayName := filepath.Base(filePath)
	toolPath := filePath
	if a.WorkDir != "" && !filepath.IsAbs(toolPath) {
		// The tool runs in WorkDir, so a path relative to ours would not resolve.
		if abs, err := filepath.Abs(toolPath); err == nil {
			toolPath = abs
		}
	}
	cmd := Command{
		Path: a.Command,
		Args: append(append([]string{}, a.Args...), a.Linter.Args(displayName, toolPath)...),
		Dir:  a.WorkDir,
	}
	if a.Linter.UsesStdin {
		cmd.Stdin = body
	}

	start := time.Now()
	output, err := runner.Run(ctx, cmd)
	if err != nil {
		logger.Errorw("Linter execution failed",
			"file", filePath,
			"command", cmd.String(),
			"error", err)
		return nil, fmt.Errorf("%s on %s: %w", a.Linter.Name, filePath, err)
	}

	diags := ParseOutput(a.Linter.Parser, string(output))

	problems := make([]Problem, 0, len(diags))
	for _, d := range diags {
		if !sameFile(d.File, filePath, displayName) {
			continue
		}
		problems = append(problems, NewProblem(filePath, d, translator))
	}

	logger.Debugw("Analysis complete",
		"file", filePath,
		"diagnostics", len(diags),
		"problems", len(problems),
		"duration", time.Since(start))

	return problems, nil
}

// sameFile reports whether a tool-reported path refers to the analyzed file.
// Tools print the stdin display name, a project-relative path, or the path
// they were given; an empty path is taken as the target itself.
func sameFile(reported, target, displayName string) bool {
	if reported == "" || reported == displayName {
		return true
	}
	r := filepath.ToSlash(filepath.Clean(reported))
	t := filepath.ToSlash(filepath.Clean(target))
	return r == t || strings.HasSuffix(t, "/"+r) || strings.HasSuffix(r, "/"+t)
}
