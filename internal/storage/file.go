package storage

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
)

// FileStorage stores each key as one file under a directory.
// Writes go through a temp file and rename so a crash never leaves a half-written value.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the directory if needed
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		return nil, fmt.Errorf("storage directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &Error{Backend: "file", Op: "init", Key: dir, Cause: err}
	}
	return &FileStorage{dir: dir}, nil
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, url.PathEscape(key)+".json")
}

func (f *FileStorage) Get(_ context.Context, key string) (string, error) {
	data, err := os.ReadFile(f.path(key))
	if errors.Is(err, os.ErrNotExist) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", &Error{Backend: "file", Op: "get", Key: key, Cause: err}
	}
	return string(data), nil
}

func (f *FileStorage) Set(_ context.Context, key, value string) error {
	tmp, err := os.CreateTemp(f.dir, ".tmp-*")
	if err != nil {
		return &Error{Backend: "file", Op: "set", Key: key, Cause: err}
	}
	tmpName := tmp.Name()
	defer func() { _ = os.Remove(tmpName) }()

	if _, err := tmp.WriteString(value); err != nil {
		_ = tmp.Close()
		return &Error{Backend: "file", Op: "set", Key: key, Cause: err}
	}
	if err := tmp.Close(); err != nil {
		return &Error{Backend: "file", Op: "set", Key: key, Cause: err}
	}
	if err := os.Rename(tmpName, f.path(key)); err != nil {
		return &Error{Backend: "file", Op: "set", Key: key, Cause: err}
	}
	return nil
}

func (f *FileStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return &Error{Backend: "file", Op: "delete", Key: key, Cause: err}
	}
	return nil
}

func (f *FileStorage) Close() error { return nil }
