package extlint

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
)

// OutputParser turns one line of a tool's output into a Diagnostic.
// Lines that do not match the tool's format are reported as !ok and dropped.
type OutputParser interface {
	Name() string
	ParseLine(raw string) (d Diagnostic, ok bool)
}

// RegexParser parses colon-separated diagnostic lines with a single pattern.
// Group indexes refer to the pattern's capture groups; 0 means the field is
// not present in the tool's format.
type RegexParser struct {
	Linter        string
	Pattern       *regexp.Regexp
	FileGroup     int
	LineGroup     int
	ColumnGroup   int
	CodeGroup     int
	SeverityGroup int
	MessageGroup  int

	// ColumnAdjust is added to the reported column to reach the translator's
	// 0-based column convention.
	ColumnAdjust int

	// Classify derives a severity from the code and the raw severity token.
	Classify func(code, severity string) Severity
}

// Name returns the linter this parser belongs to
func (p *RegexParser) Name() string {
	return p.Linter
}

// ParseLine implements OutputParser
func (p *RegexParser) ParseLine(raw string) (Diagnostic, bool) {
	m := p.Pattern.FindStringSubmatch(strings.TrimRight(raw, "\r"))
	if m == nil {
		return Diagnostic{}, false
	}

	line, err := strconv.Atoi(strings.TrimSpace(group(m, p.LineGroup)))
	if err != nil {
		return Diagnostic{}, false
	}

	column := 0
	if p.ColumnGroup > 0 {
		column, err = strconv.Atoi(strings.TrimSpace(group(m, p.ColumnGroup)))
		if err != nil {
			return Diagnostic{}, false
		}
	}

	d := Diagnostic{
		Linter:  p.Linter,
		File:    strings.TrimSpace(group(m, p.FileGroup)),
		Line:    line,
		Column:  column + p.ColumnAdjust,
		Code:    group(m, p.CodeGroup),
		Message: strings.TrimSpace(group(m, p.MessageGroup)),
	}
	if p.Classify != nil {
		d.Severity = p.Classify(d.Code, group(m, p.SeverityGroup))
	}
	return d, true
}

func group(m []string, i int) string {
	if i <= 0 || i >= len(m) {
		return ""
	}
	return m[i]
}

// ParseOutput runs every line of output through parser, keeping matches in
// the order the tool printed them.
func ParseOutput(parser OutputParser, output string) []Diagnostic {
	var diags []Diagnostic
	for _, ln := range strings.Split(output, "\n") {
		if d, ok := parser.ParseLine(ln); ok {
			diags = append(diags, d)
		}
	}
	return diags
}

// Linter describes how to invoke an external tool and read its output.
type Linter struct {
	Name   string
	Parser OutputParser

	// UsesStdin is true when the tool reads the document body from standard
	// input. Otherwise it reads the file from disk.
	UsesStdin bool

	// Args returns the tool arguments for a target. displayName is the name the
	// tool should report for stdin input; path is the file path on disk.
	Args func(displayName, path string) []string
}

// Registry maps linter names to their definitions.
type Registry struct {
	linters map[string]Linter
}

// NewRegistry returns a registry holding the built-in linters.
func NewRegistry() *Registry {
	r := &Registry{linters: make(map[string]Linter)}
	r.Register(Pylint())
	r.Register(Flake8())
	r.Register(Mypy())
	return r
}

// Register adds or replaces a linter definition.
func (r *Registry) Register(l Linter) {
	r.linters[l.Name] = l
}

// Lookup returns the linter registered under name.
func (r *Registry) Lookup(name string) (Linter, bool) {
	l, ok := r.linters[name]
	return l, ok
}

// Names returns the registered linter names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.linters))
	for name := range r.linters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// pylint's default template: path:line:column: msg_id: msg (symbol)
var pylintPattern = regexp.MustCompile(`^([^:]*):([^:]*):([^:]*):\s*([A-Z0-9]*):\s*(.*)$`)

// Pylint reads the body from stdin via --from-stdin. Its columns are 0-based;
// the extra +1 lines the highlight up with where the editor expects it.
func Pylint() Linter {
	return Linter{
		Name: "pylint",
		Parser: &RegexParser{
			Linter:       "pylint",
			Pattern:      pylintPattern,
			FileGroup:    1,
			LineGroup:    2,
			ColumnGroup:  3,
			CodeGroup:    4,
			MessageGroup: 5,
			ColumnAdjust: 1,
			Classify:     classifyPylint,
		},
		UsesStdin: true,
		Args: func(displayName, _ string) []string {
			return []string{"--from-stdin", displayName}
		},
	}
}

// classifyPylint maps the message-id category letter.
func classifyPylint(code, _ string) Severity {
	if code == "" {
		return SeverityInfo
	}
	switch code[0] {
	case 'E', 'F':
		return SeverityError
	case 'W':
		return SeverityWarning
	default:
		return SeverityInfo
	}
}

var flake8Pattern = regexp.MustCompile(`^(.*?):(\d+):(\d+):\s*([A-Z]+[0-9]+)\s+(.*)$`)

// Flake8 reads the body from stdin ("-") and reports 1-based columns.
func Flake8() Linter {
	return Linter{
		Name: "flake8",
		Parser: &RegexParser{
			Linter:       "flake8",
			Pattern:      flake8Pattern,
			FileGroup:    1,
			LineGroup:    2,
			ColumnGroup:  3,
			CodeGroup:    4,
			MessageGroup: 5,
			ColumnAdjust: -1,
			Classify:     classifyFlake8,
		},
		UsesStdin: true,
		Args: func(displayName, _ string) []string {
			return []string{"--stdin-display-name", displayName, "-"}
		},
	}
}

// classifyFlake8 treats pyflakes (F) and syntax errors (E9) as errors.
func classifyFlake8(code, _ string) Severity {
	if strings.HasPrefix(code, "F") || strings.HasPrefix(code, "E9") {
		return SeverityError
	}
	return SeverityWarning
}

var mypyPattern = regexp.MustCompile(`^(.*?):(\d+):(\d+):\s*(error|warning|note):\s*(.*?)(?:\s+\[([a-z0-9-]+)\])?$`)

// Mypy type-checks the file on disk, so its positions may be stale relative
// to an unsaved buffer. Columns are 1-based.
func Mypy() Linter {
	return Linter{
		Name: "mypy",
		Parser: &RegexParser{
			Linter:        "mypy",
			Pattern:       mypyPattern,
			FileGroup:     1,
			LineGroup:     2,
			ColumnGroup:   3,
			SeverityGroup: 4,
			MessageGroup:  5,
			CodeGroup:     6,
			ColumnAdjust:  -1,
			Classify:      classifyMypy,
		},
		Args: func(_, path string) []string {
			return []string{"--show-column-numbers", "--show-error-codes", "--no-error-summary", path}
		},
	}
}

func classifyMypy(_, severity string) Severity {
	switch severity {
	case "error":
		return SeverityError
	case "warning":
		return SeverityWarning
	default:
		return SeverityInfo
	}
}
