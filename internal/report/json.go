package report

import (
	"encoding/json"
	"io"
	"time"
)

// JSONOutput represents the structured JSON export schema
type JSONOutput struct {
	Version   string      `json:"version"`
	Timestamp string      `json:"timestamp"`
	Summary   JSONSummary `json:"summary"`
	Issues    []JSONIssue `json:"issues"`
}

// JSONSummary contains high-level counts
type JSONSummary struct {
	TotalIssues  int      `json:"total_issues"`
	Errors       int      `json:"errors"`
	Warnings     int      `json:"warnings"`
	FilesScanned int      `json:"files_scanned"`
	Linters      []string `json:"linters"`
	Skipped      []string `json:"skipped,omitempty"`
	Failures     []string `json:"failures,omitempty"`
}

// JSONIssue is a single problem. Start and End are character offsets into
// the analyzed text, End exclusive.
type JSONIssue struct {
	File     string `json:"file"`
	Line     int    `json:"line"`
	Column   int    `json:"column"`
	Start    int    `json:"start"`
	End      int    `json:"end"`
	Severity string `json:"severity"`
	Code     string `json:"code,omitempty"`
	Message  string `json:"message"`
	Linter   string `json:"linter"`
	Source   string `json:"source,omitempty"`
}

// WriteJSON writes the lint result as JSON
func WriteJSON(w io.Writer, result *Result) error {
	output := buildJSONOutput(result, time.Now())
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// buildJSONOutput converts Result to JSONOutput
func buildJSONOutput(result *Result, now time.Time) JSONOutput {
	errors, warnings := result.Counts()

	issues := make([]JSONIssue, len(result.Problems))
	for i, p := range result.Problems {
		severity := string(p.Severity)
		if severity == "" {
			severity = "info"
		}
		issues[i] = JSONIssue{
			File:     p.File,
			Line:     p.Line,
			Column:   p.Column,
			Start:    p.Start,
			End:      p.End,
			Severity: severity,
			Code:     p.Code,
			Message:  p.Message,
			Linter:   p.Linter,
			Source:   p.SourceLine,
		}
	}

	linters := result.Linters
	if linters == nil {
		linters = []string{}
	}

	return JSONOutput{
		Version:   "1.0",
		Timestamp: now.Format(time.RFC3339),
		Summary: JSONSummary{
			TotalIssues:  len(result.Problems),
			Errors:       errors,
			Warnings:     warnings,
			FilesScanned: result.FilesScanned,
			Linters:      linters,
			Skipped:      result.Skipped,
			Failures:     result.Failures,
		},
		Issues: issues,
	}
}
