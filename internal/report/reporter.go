package report

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/takemikami/extlint"
)

// Reporter handles formatting and outputting lint results
type Reporter struct {
	w               io.Writer
	useColors       bool
	printLines      bool
	printLinterName bool
}

// NewReporter creates a new reporter with the given options
func NewReporter(w io.Writer, opts Options) *Reporter {
	return &Reporter{
		w:               w,
		useColors:       shouldUseColors(opts),
		printLines:      opts.PrintIssuedLines,
		printLinterName: opts.PrintLinterName,
	}
}

// shouldUseColors determines if colors should be enabled
func shouldUseColors(opts Options) bool {
	// Explicit flag wins
	if opts.UseColors {
		return true
	}

	// FORCE_COLOR is honored by most CI systems
	if os.Getenv("FORCE_COLOR") != "" {
		return true
	}

	if os.Getenv("GITHUB_ACTIONS") == "true" {
		return true
	}

	// Auto-detect TTY
	if fileInfo, err := os.Stdout.Stat(); err == nil && (fileInfo.Mode()&os.ModeCharDevice) != 0 {
		return true
	}

	return false
}

// PrintIssues outputs problems in golangci-lint format
func (r *Reporter) PrintIssues(problems []extlint.Problem) {
	// Sort by file, then position; stable keeps linter order for ties
	sort.SliceStable(problems, func(i, j int) bool {
		if problems[i].File != problems[j].File {
			return problems[i].File < problems[j].File
		}
		return problems[i].Start < problems[j].Start
	})

	for _, p := range problems {
		r.printIssue(p)
	}
}

// printIssue formats a single problem
func (r *Reporter) printIssue(p extlint.Problem) {
	// Format: file:line:col: message (linter)
	location := fmt.Sprintf("%s:%d:%d:", p.File, p.Line, p.Column)

	linterSuffix := ""
	if r.printLinterName {
		linterSuffix = fmt.Sprintf(" (%s)", p.Linter)
	}

	fmt.Fprintf(r.w, "%s %s%s\n",
		RenderStyle(StyleCyan, location, r.useColors),
		p.Message,
		RenderStyle(StyleGray, linterSuffix, r.useColors))

	if r.printLines && p.SourceLine != "" {
		fmt.Fprintf(r.w, "\t%s\n", p.SourceLine)
		caret := buildCaretIndicator(p.SourceLine, p.Column)
		fmt.Fprintf(r.w, "\t%s\n", RenderStyle(StyleYellow, caret, r.useColors))
	}
}

// buildCaretIndicator creates the "^" indicator under a 1-based character
// column, copying tabs from the source line so the caret stays aligned.
func buildCaretIndicator(sourceLine string, column int) string {
	if column <= 1 {
		return "^"
	}

	prefix := []rune(sourceLine)
	if column-1 < len(prefix) {
		prefix = prefix[:column-1]
	}

	var padding strings.Builder
	for _, ch := range prefix {
		if ch == '\t' {
			padding.WriteRune('\t')
		} else {
			padding.WriteRune(' ')
		}
	}

	return padding.String() + "^"
}

// PrintSummary outputs the problem count summary
func (r *Reporter) PrintSummary(result Result) {
	total := len(result.Problems)
	errors, warnings := result.Counts()

	fmt.Fprintln(r.w, "")

	if errors > 0 || warnings > 0 {
		fmt.Fprintf(r.w, "%s (%s, %s):\n",
			pluralizeCount(total, "issue", "issues"),
			RenderStyle(StyleRed, pluralizeCount(errors, "error", "errors"), r.useColors && errors > 0),
			pluralizeCount(warnings, "warning", "warnings"))
	} else if total > 0 {
		fmt.Fprintf(r.w, "%s:\n", pluralizeCount(total, "issue", "issues"))
	} else {
		fmt.Fprintln(r.w, RenderStyle(StyleGreen, "0 issues.", r.useColors))
		return
	}

	for _, lc := range countByLinter(result.Problems) {
		fmt.Fprintf(r.w, "* %s: %d\n", lc.linter, lc.count)
	}
}

// PrintStatistics outputs per-linter and per-severity counts without the
// individual problems
func (r *Reporter) PrintStatistics(result Result) {
	errors, warnings := result.Counts()

	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "Lint Statistics", r.useColors))
	fmt.Fprintln(r.w, "---------------")
	fmt.Fprintf(r.w, "Files Scanned:  %d\n", result.FilesScanned)
	fmt.Fprintf(r.w, "Linters Run:    %s\n", joinOrNone(result.Linters))
	fmt.Fprintf(r.w, "Total Issues:   %d\n", len(result.Problems))
	fmt.Fprintf(r.w, "Errors:         %d\n", errors)
	fmt.Fprintf(r.w, "Warnings:       %d\n", warnings)
	fmt.Fprintf(r.w, "Info:           %d\n", len(result.Problems)-errors-warnings)

	byLinter := countByLinter(result.Problems)
	if len(byLinter) == 0 {
		return
	}
	fmt.Fprintln(r.w, "")
	fmt.Fprintln(r.w, RenderStyle(StyleCyan, "By Linter", r.useColors))
	fmt.Fprintln(r.w, "---------")
	for _, lc := range byLinter {
		fmt.Fprintf(r.w, "%-15s %d\n", lc.linter+":", lc.count)
	}
}

// PrintFailures lists skipped linters and abandoned analysis passes
func (r *Reporter) PrintFailures(result Result) {
	if len(result.Skipped) == 0 && len(result.Failures) == 0 {
		return
	}

	fmt.Fprintln(r.w, "")
	for _, name := range result.Skipped {
		fmt.Fprintln(r.w, RenderStyle(StyleYellow, fmt.Sprintf("Skipped %s: executable not found", name), r.useColors))
	}
	for _, f := range result.Failures {
		fmt.Fprintln(r.w, RenderStyle(StyleRed, "Failed: "+f, r.useColors))
	}
}

type linterCount struct {
	linter string
	count  int
}

// countByLinter groups problems by linter, sorted by name
func countByLinter(problems []extlint.Problem) []linterCount {
	counts := make(map[string]int)
	for _, p := range problems {
		counts[p.Linter]++
	}
	out := make([]linterCount, 0, len(counts))
	for linter, count := range counts {
		out = append(out, linterCount{linter: linter, count: count})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].linter < out[j].linter })
	return out
}

// pluralizeCount returns a formatted string with count and singular/plural form
func pluralizeCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

func joinOrNone(items []string) string {
	if len(items) == 0 {
		return "none"
	}
	return strings.Join(items, ", ")
}

// UseColors returns whether colors are enabled
func (r *Reporter) UseColors() bool {
	return r.useColors
}
