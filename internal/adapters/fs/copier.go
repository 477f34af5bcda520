package fs

import (
	"context"
	"path/filepath"

	"github.com/viant/afs"
	"github.com/viant/afs/file"
	"go.trai.ch/shelf/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Copier = (*Copier)(nil)

// Copier copies files through an afs.Service.
type Copier struct {
	fs afs.Service
}

// NewCopier creates a Copier backed by the default afs service.
func NewCopier() *Copier {
	return &Copier{fs: afs.New()}
}

// CopyFile copies src to dst keeping the source permission bits.
func (c *Copier) CopyFile(ctx context.Context, src, dst string) error {
	object, err := c.fs.Object(ctx, src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to stat source file"), "path", src)
	}
	if object.IsDir() {
		return zerr.With(zerr.New("source is a directory"), "path", src)
	}

	reader, err := c.fs.OpenURL(ctx, src)
	if err != nil {
		return zerr.With(zerr.Wrap(err, "failed to open source file"), "path", src)
	}
	defer reader.Close() //nolint:errcheck // Best effort close in defer

	if err := c.fs.Create(ctx, filepath.Dir(dst), file.DefaultDirOsMode, true); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to create destination directory"), "path", filepath.Dir(dst))
	}

	mode := object.Mode().Perm()
	if mode == 0 {
		mode = file.DefaultFileOsMode
	}
	if err := c.fs.Upload(ctx, dst, mode, reader); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write destination file"), "path", dst)
	}
	return nil
}
