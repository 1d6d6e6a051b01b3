package extlint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	shellquote "github.com/kballard/go-shellquote"
)

// ErrToolNotFound is returned when a linter executable cannot be located.
var ErrToolNotFound = errors.New("linter executable not found")

// Command is a single linter invocation.
type Command struct {
	Path  string   // resolved executable
	Args  []string // arguments after the executable
	Dir   string   // working directory (project base path)
	Stdin string   // document body, empty when the tool reads from disk
}

// String renders the command line for logs
func (c Command) String() string {
	return shellquote.Join(append([]string{c.Path}, c.Args...)...)
}

// Runner executes a linter and returns what it wrote to stdout.
type Runner interface {
	Run(ctx context.Context, cmd Command) ([]byte, error)
}

// ExecRunner runs commands as local subprocesses.
type ExecRunner struct{}

// Run starts the command, feeds it the body on stdin and collects stdout.
// Linters report findings through their exit status, so a non-zero exit is
// not an error. Failing to start, a timeout, or cancellation are.
func (ExecRunner) Run(ctx context.Context, c Command) ([]byte, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...)
	cmd.Dir = c.Dir
	cmd.Stdin = strings.NewReader(c.Stdin)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return nil, fmt.Errorf("running %s: %w", filepath.Base(c.Path), ctxErr)
	}
	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) {
		return nil, fmt.Errorf("running %s: %w", filepath.Base(c.Path), err)
	}
	if exitErr != nil && stdout.Len() == 0 && stderr.Len() > 0 {
		// Nothing parseable and the tool complained: it crashed or was misused.
		return nil, fmt.Errorf("%s exited with status %d: %s",
			filepath.Base(c.Path), exitErr.ExitCode(), firstLine(stderr.String()))
	}
	return stdout.Bytes(), nil
}

func firstLine(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

// SplitArgs parses a shell-like argument string such as
// `--disable=C0114 --rcfile "my config/pylintrc"`.
func SplitArgs(s string) ([]string, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	args, err := shellquote.Split(s)
	if err != nil {
		return nil, fmt.Errorf("parsing arguments %q: %w", s, err)
	}
	return args, nil
}

// ResolveCommand locates a linter executable.
//
// When interpreter points at a Python executable (or VIRTUAL_ENV is set), the
// tool is looked up next to it, the way a project's SDK ships its own
// scripts. Otherwise the PATH is searched.
func ResolveCommand(tool, interpreter string) (string, error) {
	for _, dir := range sdkBinDirs(interpreter) {
		candidate := filepath.Join(dir, executableName(tool))
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	path, err := exec.LookPath(tool)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrToolNotFound, tool)
	}
	return path, nil
}

// sdkBinDirs lists the directories that may hold the SDK's scripts.
func sdkBinDirs(interpreter string) []string {
	var dirs []string
	if interpreter != "" {
		dirs = append(dirs, filepath.Dir(interpreter))
	}
	if venv := os.Getenv("VIRTUAL_ENV"); venv != "" {
		if runtime.GOOS == "windows" {
			dirs = append(dirs, filepath.Join(venv, "Scripts"))
		} else {
			dirs = append(dirs, filepath.Join(venv, "bin"))
		}
	}
	return dirs
}

func executableName(tool string) string {
	if runtime.GOOS == "windows" && filepath.Ext(tool) == "" {
		return tool + ".exe"
	}
	return tool
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	if runtime.GOOS == "windows" {
		return true
	}
	return info.Mode()&0o111 != 0
}
