// Package fs provides file system adapters for listing, fingerprinting,
// filtering and copying cookbook files.
package fs

import (
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileLister = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// ListFiles returns every file under root as a slash-separated path
// relative to root, sorted. Symlinked directories are followed and their
// files are listed under the link's path; a directory reached twice through
// links is listed once.
func (w *Walker) ListFiles(root string) ([]string, error) {
	var files []string
	if err := w.walk(root, "", map[string]struct{}{}, &files); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to list files"), "path", root)
	}

	slices.Sort(files)
	return files, nil
}

func (w *Walker) walk(dir, prefix string, visited map[string]struct{}, files *[]string) error {
	resolved, err := filepath.EvalSymlinks(dir)
	if err != nil {
		return err
	}
	if _, seen := visited[resolved]; seen {
		return nil
	}
	visited[resolved] = struct{}{}

	return filepath.WalkDir(resolved, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if skip := w.shouldSkipDir(d); skip != nil {
			return skip
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(resolved, path)
		if err != nil {
			return err
		}
		rel = filepath.Join(prefix, rel)

		if d.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(path)
			if err != nil {
				return err
			}
			if info.IsDir() {
				if skip := w.shouldSkipDir(fs.FileInfoToDirEntry(info)); skip != nil {
					return nil
				}
				return w.walk(path, rel, visited, files)
			}
		}
		*files = append(*files, filepath.ToSlash(rel))
		return nil
	})
}

func (w *Walker) shouldSkipDir(d fs.DirEntry) error {
	if !d.IsDir() {
		return nil
	}
	switch d.Name() {
	case ".git", ".jj", ".svn", ".hg":
		return filepath.SkipDir
	}
	return nil
}
