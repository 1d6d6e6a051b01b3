package extlint

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	ignore "github.com/sabhiram/go-gitignore"
)

// ExpandPaths expands file arguments and doublestar patterns
// ("src/**/*.py") into a sorted, de-duplicated list of regular files.
//
// Relative paths matched by ./.gitignore are skipped. Absolute paths are
// never filtered, since they may point outside the project.
func ExpandPaths(patterns []string) ([]string, error) {
	gi := loadGitIgnore(".gitignore")

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range patterns {
		matches, err := doublestar.FilepathGlob(pattern)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", pattern, err)
		}

		for _, match := range matches {
			if seen[match] {
				continue
			}
			info, err := os.Stat(match)
			if err != nil || info.IsDir() {
				continue
			}
			if gi != nil && !filepath.IsAbs(match) && gi.MatchesPath(match) {
				continue
			}
			seen[match] = true
			files = append(files, match)
		}
	}

	sort.Strings(files)
	return files, nil
}

// loadGitIgnore compiles path, or returns nil when there is none.
func loadGitIgnore(path string) *ignore.GitIgnore {
	gi, err := ignore.CompileIgnoreFile(path)
	if err != nil {
		return nil
	}
	return gi
}
