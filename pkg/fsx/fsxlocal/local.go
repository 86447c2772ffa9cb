package fsxlocal

import (
	"context"
	"io"
	"os"
	"path/filepath"

	"github.com/orgstruct/bff/pkg/errx"
	"github.com/orgstruct/bff/pkg/fsx"
)

// LocalFileSystem stores files under a base directory on local disk
type LocalFileSystem struct {
	basePath string
}

// NewLocalFileSystem creates the base directory if needed
func NewLocalFileSystem(basePath string) (*LocalFileSystem, error) {
	if basePath == "" {
		basePath = "."
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, errx.Wrap(err, "failed to create storage directory", errx.TypeInternal)
	}
	return &LocalFileSystem{basePath: basePath}, nil
}

func (l *LocalFileSystem) GetBasePath() string {
	return l.basePath
}

func (l *LocalFileSystem) resolve(path string) string {
	return filepath.Join(l.basePath, filepath.Clean("/"+path))
}

func (l *LocalFileSystem) ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error) {
	f, err := os.Open(l.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errx.New("file not found", errx.TypeNotFound).WithDetail("path", path)
		}
		return nil, errx.Wrap(err, "failed to open file", errx.TypeInternal).WithDetail("path", path)
	}
	return f, nil
}

func (l *LocalFileSystem) Exists(ctx context.Context, path string) (bool, error) {
	_, err := os.Stat(l.resolve(path))
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, errx.Wrap(err, "failed to stat file", errx.TypeInternal).WithDetail("path", path)
	}
	return true, nil
}

func (l *LocalFileSystem) WriteFile(ctx context.Context, path string, content io.Reader) error {
	full := l.resolve(path)
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return errx.Wrap(err, "failed to create directory", errx.TypeInternal).WithDetail("path", path)
	}
	f, err := os.Create(full)
	if err != nil {
		return errx.Wrap(err, "failed to create file", errx.TypeInternal).WithDetail("path", path)
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return errx.Wrap(err, "failed to write file", errx.TypeInternal).WithDetail("path", path)
	}
	return nil
}

func (l *LocalFileSystem) Delete(ctx context.Context, path string) error {
	if err := os.Remove(l.resolve(path)); err != nil && !os.IsNotExist(err) {
		return errx.Wrap(err, "failed to delete file", errx.TypeInternal).WithDetail("path", path)
	}
	return nil
}

var _ fsx.FileSystem = (*LocalFileSystem)(nil)
