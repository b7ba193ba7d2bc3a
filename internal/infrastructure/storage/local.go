// Package storage keeps uploaded attachments on local disk or in MinIO.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// PublicPrefix is where the router serves local uploads.
const PublicPrefix = "/uploads"

// uploadFile is the part of *os.File that Save needs.
type uploadFile interface {
	io.WriteCloser
	Name() string
}

type LocalStorage struct {
	dir    string
	create func(path string) (uploadFile, error)
}

// NewLocalStorage creates dir when it does not exist yet.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{dir: dir, create: createExclusive}, nil
}

func createExclusive(path string) (uploadFile, error) {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return nil, err
	}
	return f, nil
}

func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes r to dir/key and returns the public path.
func (s *LocalStorage) Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) (string, error) {
	if key == "" || strings.ContainsAny(key, `/\`) || key == "." || key == ".." {
		return "", fmt.Errorf("invalid object key: %q", key)
	}

	f, err := s.create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	_, err = io.Copy(f, r)
	closeErr := f.Close()
	switch {
	case err != nil:
		err = fmt.Errorf("failed to write file: %w", err)
	case closeErr != nil:
		err = fmt.Errorf("failed to close file: %w", closeErr)
	}
	if err != nil {
		// Never leave a truncated attachment behind.
		_ = os.Remove(f.Name())
		return "", err
	}

	return PublicPrefix + "/" + key, nil
}
