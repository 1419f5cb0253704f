package report

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"
)

// DefaultPattern matches the file names the choreo runner writes.
const DefaultPattern = "choreo_test_report_*.json"

// Locate resolves path to a concrete report file. A regular file is
// returned unchanged; for a directory the most recently modified file
// matching pattern wins.
func Locate(path, pattern string) (string, error) {
	if pattern == "" {
		pattern = DefaultPattern
	}

	info, err := os.Stat(path)
	if err != nil {
		return "", fmt.Errorf("path not found: %s", path)
	}
	if !info.IsDir() {
		return path, nil
	}

	matches, err := filepath.Glob(filepath.Join(path, pattern))
	if err != nil {
		return "", fmt.Errorf("invalid report pattern %q: %w", pattern, err)
	}

	type candidate struct {
		path  string
		mtime time.Time
	}
	var candidates []candidate
	for _, m := range matches {
		fi, err := os.Stat(m)
		if err != nil || fi.IsDir() {
			continue
		}
		candidates = append(candidates, candidate{path: m, mtime: fi.ModTime()})
	}
	if len(candidates) == 0 {
		return "", fmt.Errorf("no report files found in directory: %s", path)
	}

	sort.Slice(candidates, func(i, j int) bool {
		return candidates[i].mtime.After(candidates[j].mtime)
	})
	return candidates[0].path, nil
}
