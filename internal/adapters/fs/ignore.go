package fs

import (
	"bufio"
	"errors"
	"io"
	iofs "io/fs"
	"os"
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"go.trai.ch/shelf/internal/core/domain"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

var (
	_ ports.IgnoreFilter = (*Ignore)(nil)
	_ ports.IgnoreLoader = (*IgnoreLoader)(nil)
)

// ErrInvalidIgnorePattern is returned for patterns doublestar cannot compile.
var ErrInvalidIgnorePattern = zerr.New("invalid ignore pattern")

// Ignore holds the patterns of a chefignore file.
type Ignore struct {
	patterns []string
}

// ParseIgnore reads one pattern per line. Blank lines and lines starting with # are skipped.
func ParseIgnore(r io.Reader) (*Ignore, error) {
	var patterns []string
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		p := strings.TrimSpace(scanner.Text())
		if p == "" || strings.HasPrefix(p, "#") {
			continue
		}
		p = strings.TrimPrefix(p, "./")
		if !doublestar.ValidatePattern(strings.TrimSuffix(p, "/")) {
			return nil, zerr.With(zerr.With(zerr.Wrap(ErrInvalidIgnorePattern, "failed to parse ignore file"), "pattern", p), "line", line)
		}
		patterns = append(patterns, p)
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to read ignore patterns")
	}
	return &Ignore{patterns: patterns}, nil
}

// Patterns returns the parsed patterns.
func (i *Ignore) Patterns() []string {
	return i.patterns
}

// Matches reports whether a slash-separated relative path is ignored.
// A pattern matches the full path, any parent directory of it, or, when
// the pattern has no slash, any single path element.
func (i *Ignore) Matches(name string) bool {
	for _, pattern := range i.patterns {
		dirOnly := strings.HasSuffix(pattern, "/")
		pattern = strings.TrimSuffix(pattern, "/")

		if !dirOnly && doublestar.MatchUnvalidated(pattern, name) {
			return true
		}
		for dir := path.Dir(name); dir != "." && dir != "/"; dir = path.Dir(dir) {
			if doublestar.MatchUnvalidated(pattern, dir) {
				return true
			}
		}
		if strings.Contains(pattern, "/") {
			continue
		}
		elems := strings.Split(name, "/")
		if dirOnly {
			elems = elems[:len(elems)-1]
		}
		for _, elem := range elems {
			if doublestar.MatchUnvalidated(pattern, elem) {
				return true
			}
		}
	}
	return false
}

// RemoveIgnoresFrom returns paths that no pattern matches, preserving order.
func (i *Ignore) RemoveIgnoresFrom(paths []string) []string {
	kept := make([]string, 0, len(paths))
	for _, p := range paths {
		if !i.Matches(p) {
			kept = append(kept, p)
		}
	}
	return kept
}

// IgnoreLoader reads chefignore files from disk.
type IgnoreLoader struct{}

// NewIgnoreLoader creates a new IgnoreLoader.
func NewIgnoreLoader() *IgnoreLoader {
	return &IgnoreLoader{}
}

// Load parses the ignore file at path.
func (l *IgnoreLoader) Load(filePath string) (ports.IgnoreFilter, error) {
	f, err := os.Open(filePath) //nolint:gosec // Path is controlled by caller
	if err != nil {
		if errors.Is(err, iofs.ErrNotExist) {
			return nil, zerr.With(zerr.Wrap(err, "ignore file not found"), "path", filePath)
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to open ignore file"), "path", filePath)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	ignore, err := ParseIgnore(f)
	if err != nil {
		return nil, zerr.With(err, "path", filePath)
	}
	return ignore, nil
}

// Locate returns the first existing ignore file for cwd.
func (l *IgnoreLoader) Locate(cwd string) (string, bool) {
	for _, candidate := range domain.IgnoreFileCandidates(cwd) {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}
	}
	return "", false
}
