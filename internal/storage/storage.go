// Package storage stores uploaded profile images on the local filesystem
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// profilesDir is the subdirectory for profile images under the base path
const profilesDir = "profiles"

// localStorage implements ProfileStorage using the local filesystem
type localStorage struct {
	basePath string
}

// NewLocalStorage creates a new localStorage instance rooted at basePath
func NewLocalStorage(basePath string) *localStorage {
	return &localStorage{
		basePath: basePath,
	}
}

// path returns the full on-disk path for a stored profile image
func (s *localStorage) path(filename string) string {
	return filepath.Join(s.basePath, profilesDir, filename)
}

// Save writes the image bytes under the profiles directory, creating it if
// needed, and returns the number of bytes written
func (s *localStorage) Save(filename string, src io.Reader) (int64, error) {
	path := s.path(filename)

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, fmt.Errorf("failed to create upload directory: %w", err)
	}

	dst, err := os.Create(path)
	if err != nil {
		return 0, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	written, err := io.Copy(dst, src)
	if err != nil {
		return 0, fmt.Errorf("failed to write file: %w", err)
	}

	return written, nil
}

// Remove deletes a stored profile image
func (s *localStorage) Remove(filename string) error {
	return os.Remove(s.path(filename))
}

// URLPath returns the public URL path under which the image is served
func (s *localStorage) URLPath(filename string) string {
	return "/uploads/" + profilesDir + "/" + filename
}
