package extlint

import "strings"

// Severity of a diagnostic as classified by its tool's parser
type Severity string

// Severity constants
const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = ""
)

// Diagnostic is a single finding parsed from a linter's output
type Diagnostic struct {
	Linter   string   // "pylint"
	File     string   // "app/models.py" (as reported by the tool)
	Line     int      // 1-based
	Column   int      // 0-based, after the parser's tool-specific adjustment
	Code     string   // "C0114"
	Severity Severity // derived from Code or the tool's severity token
	Message  string   // "Missing module docstring (missing-module-docstring)"
}

// Fix is a suggested replacement for a problem's range. Parsed linter output
// never carries fixes; the type exists so consumers get a typed, empty list.
type Fix struct {
	NewText string
	Start   int
	End     int
}

// Problem is what the host consumes: a file, a half-open character range and
// a composed message.
type Problem struct {
	File    string `json:"file"`
	Start   int    `json:"start"` // character offset
	End     int    `json:"end"`   // Start+1
	Message string `json:"message"`
	Fixes   []Fix  `json:"fixes"`

	// Reporting context
	Linter     string   `json:"linter"`
	Code       string   `json:"code"`
	Severity   Severity `json:"severity"`
	Line       int      `json:"line"`   // 1-based
	Column     int      `json:"column"` // 1-based, for file:line:col display
	SourceLine string   `json:"-"`
}

// ComposeMessage builds the host-facing message "<linter>: <code> <message>".
// The code is omitted when the tool did not report one.
func ComposeMessage(d Diagnostic) string {
	var b strings.Builder
	b.WriteString(d.Linter)
	b.WriteString(": ")
	if d.Code != "" {
		b.WriteString(d.Code)
		b.WriteString(" ")
	}
	b.WriteString(d.Message)
	return b.String()
}

// NewProblem anchors d at its translated offset as a single-character range.
func NewProblem(file string, d Diagnostic, t *OffsetTranslator) Problem {
	offset := t.Offset(d.Line, d.Column)
	line, column := t.Position(offset)
	return Problem{
		File:       file,
		Start:      offset,
		End:        offset + 1,
		Message:    ComposeMessage(d),
		Fixes:      []Fix{},
		Linter:     d.Linter,
		Code:       d.Code,
		Severity:   d.Severity,
		Line:       line,
		Column:     column + 1,
		SourceLine: t.LineText(line),
	}
}
