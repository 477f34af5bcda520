package ports

import "context"

// FileLister enumerates the files of a directory tree.
//
//go:generate mockgen -source=filesystem.go -destination=mocks/mock_filesystem.go -package=mocks
type FileLister interface {
	// ListFiles returns slash-separated paths relative to root, sorted.
	ListFiles(root string) ([]string, error)
}

// Copier copies single files.
type Copier interface {
	// CopyFile copies src to dst, creating parent directories of dst.
	CopyFile(ctx context.Context, src, dst string) error
}
