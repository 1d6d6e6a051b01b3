package extlint

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOffsetTranslator_LineStarts(t *testing.T) {
	tr := NewOffsetTranslator("abc\ndef\nghi")
	require.Equal(t, []int{0, 4, 8}, tr.lineStarts)
	assert.Equal(t, 3, tr.LineCount())
	assert.Equal(t, 11, tr.Len())
}

func TestOffsetTranslator_Offset(t *testing.T) {
	tests := []struct {
		name   string
		body   string
		line   int
		column int
		want   int
	}{
		{name: "start of second line", body: "abc\ndef\nghi", line: 2, column: 0, want: 4},
		{name: "inside second line", body: "abc\ndef\nghi", line: 2, column: 2, want: 6},
		{name: "inside last line", body: "abc\ndef\nghi", line: 3, column: 2, want: 10},
		{name: "end of last line", body: "abc\ndef\nghi", line: 3, column: 3, want: 11},
		{name: "line zero clamps to first line", body: "abc\ndef\nghi", line: 0, column: 0, want: 0},
		{name: "negative line clamps to first line", body: "abc\ndef\nghi", line: -5, column: 1, want: 1},
		{name: "line past end clamps to last line", body: "abc\ndef\nghi", line: 100, column: 0, want: 8},
		{name: "negative column clamps to zero", body: "abc\ndef\nghi", line: 2, column: -3, want: 4},
		{name: "column overflow stays on its line", body: "ab\ncd", line: 1, column: 1000, want: 2},
		{name: "column overflow on last line", body: "ab\ncd", line: 2, column: 1000, want: 5},
		{name: "empty body", body: "", line: 1, column: 0, want: 0},
		{name: "empty body with garbage input", body: "", line: 42, column: 42, want: 0},
		{name: "trailing newline opens an empty line", body: "x = 1\ny=2\n", line: 3, column: 5, want: 10},
		{name: "carriage return is part of the line", body: "ab\r\ncd", line: 1, column: 10, want: 3},
		{name: "columns count characters not bytes", body: "héllo\nwörld", line: 2, column: 2, want: 8},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := NewOffsetTranslator(tt.body)
			require.Equal(t, tt.want, tr.Offset(tt.line, tt.column))
		})
	}
}

func TestOffsetTranslator_SingleLine(t *testing.T) {
	body := "print('hello')"
	tr := NewOffsetTranslator(body)

	for c := -3; c < len(body)+5; c++ {
		want := min(c, len(body))
		if c < 0 {
			want = 0
		}
		assert.Equal(t, want, tr.Offset(1, c), "column %d", c)
	}
}

func TestOffsetTranslator_ClampingMatchesBoundaryLines(t *testing.T) {
	tr := NewOffsetTranslator("one\ntwo\nthree")

	assert.Equal(t, tr.Offset(1, 0), tr.Offset(0, 0))
	assert.Equal(t, tr.Offset(3, 0), tr.Offset(100, 0))
}

func TestOffsetTranslator_NeverOutOfBounds(t *testing.T) {
	bodies := []string{"", "\n", "\n\n", "a", "ab\ncd\n", "tab\there\n\nend"}
	for _, body := range bodies {
		tr := NewOffsetTranslator(body)
		for line := -2; line <= tr.LineCount()+2; line++ {
			for col := -2; col <= 20; col++ {
				off := tr.Offset(line, col)
				require.GreaterOrEqual(t, off, 0)
				require.LessOrEqual(t, off, tr.Len())
			}
		}
	}
}

func TestOffsetTranslator_Deterministic(t *testing.T) {
	tr := NewOffsetTranslator("abc\ndef\nghi")
	first := tr.Offset(2, 1)
	for range 10 {
		require.Equal(t, first, tr.Offset(2, 1))
	}
}

func TestOffsetTranslator_PylintScenario(t *testing.T) {
	// pylint reports line 2, column 0; the parser shifts the column by one.
	tr := NewOffsetTranslator("x = 1\ny=2\n")
	assert.Equal(t, 7, tr.Offset(2, 0+1))
}

func TestOffsetTranslator_Position(t *testing.T) {
	tr := NewOffsetTranslator("abc\ndef\nghi")

	tests := []struct {
		offset   int
		wantLine int
		wantCol  int
	}{
		{offset: 0, wantLine: 1, wantCol: 0},
		{offset: 3, wantLine: 1, wantCol: 3},
		{offset: 4, wantLine: 2, wantCol: 0},
		{offset: 10, wantLine: 3, wantCol: 2},
		{offset: 11, wantLine: 3, wantCol: 3},
		{offset: 500, wantLine: 3, wantCol: 3},
		{offset: -1, wantLine: 1, wantCol: 0},
	}
	for _, tt := range tests {
		line, col := tr.Position(tt.offset)
		assert.Equal(t, tt.wantLine, line, "offset %d", tt.offset)
		assert.Equal(t, tt.wantCol, col, "offset %d", tt.offset)
	}

	// Offset and Position agree for every in-range offset.
	for off := 0; off <= tr.Len(); off++ {
		line, col := tr.Position(off)
		require.Equal(t, off, tr.Offset(line, col))
	}
}

func TestOffsetTranslator_LineText(t *testing.T) {
	tr := NewOffsetTranslator("first\n\tsecond\nthird")

	assert.Equal(t, "first", tr.LineText(1))
	assert.Equal(t, "\tsecond", tr.LineText(2))
	assert.Equal(t, "third", tr.LineText(3))
	assert.Equal(t, "first", tr.LineText(0))
	assert.Equal(t, "third", tr.LineText(99))
	assert.Empty(t, NewOffsetTranslator("").LineText(1))
}
