// Package extlint runs external linters over in-memory documents and maps
// their findings back to character offsets.
//
// # Offsets
//
// Linters report (line, column) pairs. Editors address text by character
// offset. OffsetTranslator bridges the two, clamping positions that no longer
// exist in the buffer:
//
//	t := extlint.NewOffsetTranslator("x = 1\ny=2\n")
//	t.Offset(2, 1) // 7
//
// # Analysis
//
// An Analyzer runs one linter over one document:
//
//	cmd, err := extlint.ResolveCommand("pylint", ".venv/bin/python")
//	a := extlint.NewAnalyzer(extlint.Pylint(), cmd, logger)
//	problems, err := a.Analyze(ctx, "app/models.py", body)
//
// Each Problem covers the single character at the translated offset and
// carries a message of the form "pylint: C0114 Missing module docstring".
//
// # CLI Tool
//
// Install with:
//
//	go install github.com/takemikami/extlint/cmd/extlint@latest
package extlint
