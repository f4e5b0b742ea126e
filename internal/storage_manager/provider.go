// Package storage_manager stores small documents, such as the user-defined MCP
// server config, on the local filesystem or in S3.
package storage_manager //nolint:revive // var-naming: using underscores for domain clarity

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// ErrNotFound is returned by Read when the document does not exist.
var ErrNotFound = errors.New("object not found")

// FileProvider defines the interface for file storage operations.
type FileProvider interface {
	// Read returns the document, or an error wrapping ErrNotFound
	Read(ctx context.Context, path string) ([]byte, error)

	// Write replaces the document, creating it if needed
	Write(ctx context.Context, path string, data []byte) error

	Exists(ctx context.Context, path string) (bool, error)

	// Delete removes the document; deleting a missing document is not an error
	Delete(ctx context.Context, path string) error

	// Describe names the backing location for logs
	Describe(path string) string
}

// LocalFileProvider implements FileProvider for local filesystem.
type LocalFileProvider struct {
	baseDir string
}

// NewLocalFileProvider creates a new local file provider.
func NewLocalFileProvider(baseDir string) *LocalFileProvider {
	return &LocalFileProvider{baseDir: baseDir}
}

func (p *LocalFileProvider) fullPath(path string) string {
	return filepath.Join(p.baseDir, path)
}

// Read reads a file from the local filesystem.
func (p *LocalFileProvider) Read(_ context.Context, path string) ([]byte, error) {
	data, err := os.ReadFile(p.fullPath(path)) //nolint:gosec // G304: Path is constructed from trusted baseDir
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", p.fullPath(path), ErrNotFound)
	}
	return data, err
}

// Write writes through a temp file in the same directory, then renames it.
func (p *LocalFileProvider) Write(_ context.Context, path string, data []byte) error {
	fullPath := p.fullPath(path)

	dir := filepath.Dir(fullPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(fullPath)+"-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file in %s: %w", dir, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("failed to write %s: %w", fullPath, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", fullPath, err)
	}
	return os.Rename(tmp.Name(), fullPath)
}

// Exists checks if a file exists on the local filesystem.
func (p *LocalFileProvider) Exists(_ context.Context, path string) (bool, error) {
	_, err := os.Stat(p.fullPath(path))
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, err
}

// Delete removes a file from the local filesystem.
func (p *LocalFileProvider) Delete(_ context.Context, path string) error {
	err := os.Remove(p.fullPath(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return err
}

// Describe returns the file path.
func (p *LocalFileProvider) Describe(path string) string {
	return p.fullPath(path)
}
