package report

import (
	"fmt"
	"io"
)

// DetermineOutputFormat selects the output format from flags
func DetermineOutputFormat(formatFlag string, quiet bool) OutputFormat {
	// Quiet means exit code only; the format is irrelevant
	if quiet {
		return OutputIssues
	}

	switch formatFlag {
	case "issues":
		return OutputIssues
	case "summary":
		return OutputSummary
	case "json":
		return OutputJSON
	default:
		// Unknown or empty: golangci-lint style issues
		return OutputIssues
	}
}

// WriteOutput writes the result in the requested format
func WriteOutput(w io.Writer, result *Result, format OutputFormat, opts Options) error {
	switch format {
	case OutputSummary:
		reporter := NewReporter(w, opts)
		reporter.PrintStatistics(*result)
		reporter.PrintFailures(*result)
	case OutputJSON:
		if err := WriteJSON(w, result); err != nil {
			return fmt.Errorf("writing JSON: %w", err)
		}
	default:
		reporter := NewReporter(w, opts)
		reporter.PrintIssues(result.Problems)
		reporter.PrintSummary(*result)
		reporter.PrintFailures(*result)
	}
	return nil
}
