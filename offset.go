package extlint

import "sort"

// OffsetTranslator maps (line, column) positions reported by an external
// tool to absolute character offsets within a document body.
//
// Lines are split on '\n' only. Offsets and columns count characters
// (Unicode code points), not bytes. A translator is built once per analysis
// and never mutated afterwards.
type OffsetTranslator struct {
	lineStarts []int // lineStarts[i] is the offset of the first character of line i+1
	length     int   // body length in characters
	body       []rune
}

// NewOffsetTranslator scans body once and records where every line starts.
// Line 1 always starts at offset 0.
func NewOffsetTranslator(body string) *OffsetTranslator {
	runes := []rune(body)
	starts := []int{0}
	for i, r := range runes {
		if r == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &OffsetTranslator{
		lineStarts: starts,
		length:     len(runes),
		body:       runes,
	}
}

// Offset returns the character offset of a 1-based line and 0-based column.
//
// Out-of-range input is clamped, never rejected: lines below 1 map to line 1,
// lines past the end map to the last line, and columns are kept within the
// target line (a column past the line's end lands on its newline or on the
// end of the body).
func (t *OffsetTranslator) Offset(line, column int) int {
	idx := t.lineIndex(line)
	if column < 0 {
		column = 0
	}
	if n := t.lineLength(idx); column > n {
		column = n
	}
	return clamp(t.lineStarts[idx]+column, 0, t.length)
}

// Position is the inverse of Offset: it returns the 1-based line and 0-based
// column of offset, which is first clamped to [0, Len()].
func (t *OffsetTranslator) Position(offset int) (line, column int) {
	offset = clamp(offset, 0, t.length)
	// first line starting after offset, minus one
	idx := sort.Search(len(t.lineStarts), func(i int) bool {
		return t.lineStarts[i] > offset
	}) - 1
	return idx + 1, offset - t.lineStarts[idx]
}

// LineText returns the text of a 1-based line without its trailing newline.
// The line number is clamped like in Offset.
func (t *OffsetTranslator) LineText(line int) string {
	idx := t.lineIndex(line)
	start := t.lineStarts[idx]
	return string(t.body[start : start+t.lineLength(idx)])
}

// LineCount returns the number of lines in the body. An empty body has one
// empty line, and a trailing newline opens a final empty line.
func (t *OffsetTranslator) LineCount() int {
	return len(t.lineStarts)
}

// Len returns the body length in characters.
func (t *OffsetTranslator) Len() int {
	return t.length
}

// lineIndex converts a 1-based line number to a clamped 0-based index.
func (t *OffsetTranslator) lineIndex(line int) int {
	return clamp(line, 1, len(t.lineStarts)) - 1
}

// lineLength is the number of characters on line idx, excluding the newline.
func (t *OffsetTranslator) lineLength(idx int) int {
	if idx+1 < len(t.lineStarts) {
		return t.lineStarts[idx+1] - 1 - t.lineStarts[idx]
	}
	return t.length - t.lineStarts[idx]
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
