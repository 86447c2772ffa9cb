package fsx

import (
	"context"
	"io"
)

// FileReader reads files from a backing store
type FileReader interface {
	ReadFileStream(ctx context.Context, path string) (io.ReadCloser, error)
	Exists(ctx context.Context, path string) (bool, error)
}

// FileWriter writes files to a backing store
type FileWriter interface {
	WriteFile(ctx context.Context, path string, content io.Reader) error
}

// FileSystem is a read/write file store (local disk or S3)
type FileSystem interface {
	FileReader
	FileWriter
	Delete(ctx context.Context, path string) error
}
