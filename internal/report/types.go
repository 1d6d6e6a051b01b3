package report

import "github.com/takemikami/extlint"

// OutputFormat represents the report output format
type OutputFormat string

const (
	// OutputIssues prints problems in golangci-lint format (default)
	OutputIssues OutputFormat = "issues"
	// OutputSummary prints counts per linter and severity only
	OutputSummary OutputFormat = "summary"
	// OutputJSON exports structured data for editor and tool integration
	OutputJSON OutputFormat = "json"
)

// Options controls the text reporters
type Options struct {
	PrintIssuedLines bool // Show source lines with a caret (default: true)
	PrintLinterName  bool // Show (pylint) suffix (default: true)
	UseColors        bool // Force color output
}

// Result collects everything a lint run produced
type Result struct {
	Problems     []extlint.Problem
	FilesScanned int
	Linters      []string // linters that ran
	Skipped      []string // linters whose executable was not found
	Failures     []string // "pylint on app.py: ..." for abandoned passes
}

// Counts returns the number of error and warning problems
func (r *Result) Counts() (errors, warnings int) {
	for _, p := range r.Problems {
		switch p.Severity {
		case extlint.SeverityError:
			errors++
		case extlint.SeverityWarning:
			warnings++
		}
	}
	return errors, warnings
}
