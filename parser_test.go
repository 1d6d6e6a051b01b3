package extlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPylintParseLine(t *testing.T) {
	parser := Pylint().Parser

	tests := []struct {
		name   string
		line   string
		want   Diagnostic
		wantOK bool
	}{
		{
			name: "convention message",
			line: "app.py:1:0: C0114: Missing module docstring (missing-module-docstring)",
			want: Diagnostic{
				Linter:   "pylint",
				File:     "app.py",
				Line:     1,
				Column:   1,
				Code:     "C0114",
				Severity: SeverityInfo,
				Message:  "Missing module docstring (missing-module-docstring)",
			},
			wantOK: true,
		},
		{
			name: "error message",
			line: "app.py:12:4: E0602: Undefined variable 'foo' (undefined-variable)",
			want: Diagnostic{
				Linter:   "pylint",
				File:     "app.py",
				Line:     12,
				Column:   5,
				Code:     "E0602",
				Severity: SeverityError,
				Message:  "Undefined variable 'foo' (undefined-variable)",
			},
			wantOK: true,
		},
		{
			name: "warning with CRLF",
			line: "app.py:3:8: W0612: Unused variable 'x' (unused-variable)\r",
			want: Diagnostic{
				Linter:   "pylint",
				File:     "app.py",
				Line:     3,
				Column:   9,
				Code:     "W0612",
				Severity: SeverityWarning,
				Message:  "Unused variable 'x' (unused-variable)",
			},
			wantOK: true,
		},
		{name: "module header", line: "************* Module app", wantOK: false},
		{name: "score line", line: "Your code has been rated at 5.00/10 (previous run: 4.00/10, +1.00)", wantOK: false},
		{name: "non-numeric line", line: "app.py:x:0: C0114: msg", wantOK: false},
		{name: "empty", line: "", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parser.ParseLine(tt.line)
			require.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFlake8ParseLine(t *testing.T) {
	parser := Flake8().Parser

	d, ok := parser.ParseLine("pkg/app.py:2:1: F401 'os' imported but unused")
	require.True(t, ok)
	assert.Equal(t, "pkg/app.py", d.File)
	assert.Equal(t, 2, d.Line)
	assert.Equal(t, 0, d.Column)
	assert.Equal(t, "F401", d.Code)
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, "'os' imported but unused", d.Message)

	d, ok = parser.ParseLine("pkg/app.py:10:80: E501 line too long (88 > 79 characters)")
	require.True(t, ok)
	assert.Equal(t, 79, d.Column)
	assert.Equal(t, SeverityWarning, d.Severity)

	d, ok = parser.ParseLine("pkg/app.py:1:5: E999 SyntaxError: invalid syntax")
	require.True(t, ok)
	assert.Equal(t, SeverityError, d.Severity)

	_, ok = parser.ParseLine("1     E501 line too long")
	assert.False(t, ok)
}

func TestMypyParseLine(t *testing.T) {
	parser := Mypy().Parser

	d, ok := parser.ParseLine(`app.py:4:12: error: Incompatible return value type (got "int", expected "str")  [return-value]`)
	require.True(t, ok)
	assert.Equal(t, "app.py", d.File)
	assert.Equal(t, 4, d.Line)
	assert.Equal(t, 11, d.Column)
	assert.Equal(t, "return-value", d.Code)
	assert.Equal(t, SeverityError, d.Severity)
	assert.Equal(t, `Incompatible return value type (got "int", expected "str")`, d.Message)

	d, ok = parser.ParseLine("app.py:7:1: note: See https://mypy.readthedocs.io")
	require.True(t, ok)
	assert.Empty(t, d.Code)
	assert.Equal(t, SeverityInfo, d.Severity)
	assert.Equal(t, "See https://mypy.readthedocs.io", d.Message)

	_, ok = parser.ParseLine("Success: no issues found in 1 source file")
	assert.False(t, ok)
}

func TestParseOutput_SkipsMalformedLines(t *testing.T) {
	output := "************* Module app\n" +
		"app.py:1:0: C0114: Missing module docstring (missing-module-docstring)\n" +
		"garbage\n" +
		"app.py:2:0: E0602: Undefined variable 'y' (undefined-variable)\n" +
		"\n" +
		"-----------------------------------\n"

	diags := ParseOutput(Pylint().Parser, output)
	require.Len(t, diags, 2)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 2, diags[1].Line)
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()
	assert.Equal(t, []string{"flake8", "mypy", "pylint"}, r.Names())

	l, ok := r.Lookup("pylint")
	require.True(t, ok)
	assert.True(t, l.UsesStdin)
	assert.Equal(t, []string{"--from-stdin", "app.py"}, l.Args("app.py", "/work/app.py"))

	_, ok = r.Lookup("eslint")
	assert.False(t, ok)

	custom := Linter{Name: "eslint", Parser: Flake8().Parser}
	r.Register(custom)
	_, ok = r.Lookup("eslint")
	assert.True(t, ok)
	assert.Contains(t, r.Names(), "eslint")
}

func TestComposeMessage(t *testing.T) {
	assert.Equal(t, "pylint: C0114 Missing module docstring",
		ComposeMessage(Diagnostic{Linter: "pylint", Code: "C0114", Message: "Missing module docstring"}))
	assert.Equal(t, "mypy: See docs",
		ComposeMessage(Diagnostic{Linter: "mypy", Message: "See docs"}))
}

func TestNewProblem(t *testing.T) {
	tr := NewOffsetTranslator("x = 1\ny=2\n")
	d := Diagnostic{Linter: "pylint", File: "a.py", Line: 2, Column: 1, Code: "C0103", Message: "bad name"}

	p := NewProblem("a.py", d, tr)
	assert.Equal(t, 7, p.Start)
	assert.Equal(t, 8, p.End)
	assert.Equal(t, "pylint: C0103 bad name", p.Message)
	assert.NotNil(t, p.Fixes)
	assert.Empty(t, p.Fixes)
	assert.Equal(t, 2, p.Line)
	assert.Equal(t, 2, p.Column)
	assert.Equal(t, "y=2", p.SourceLine)
}
