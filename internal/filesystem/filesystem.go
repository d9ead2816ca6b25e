package filesystem

import (
	"io"
	"os"
	"path/filepath"
)

// OSFileSystem performs destination-file operations on the local disk.
type OSFileSystem struct{}

func NewOSFileSystem() *OSFileSystem {
	return &OSFileSystem{}
}

// CreateFile creates or truncates the file at path, creating parent
// directories as needed.
func (fs *OSFileSystem) CreateFile(path string) (io.WriteCloser, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	return os.Create(path)
}

// DeleteFile deletes a file.
func (fs *OSFileSystem) DeleteFile(path string) error {
	return os.Remove(path)
}

// FileExists checks if a file exists.
func (fs *OSFileSystem) FileExists(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}

	if os.IsNotExist(err) {
		return false, nil
	}

	return false, err
}
