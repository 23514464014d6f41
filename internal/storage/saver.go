// Package storage saves finished blobs (downloads and compressed images)
// into a local directory.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ytget/imgdrop/internal/platform"
)

// File permissions
const (
	DefaultFilePermissions = 0644
)

// MaxNameAttempts bounds the " (n)" suffix search
const MaxNameAttempts = 1000

// ErrInvalidName is returned for names that would escape the target directory
var ErrInvalidName = errors.New("invalid file name")

// Saver persists named content and returns where it ended up
type Saver interface {
	Save(name string, data []byte) (string, error)
}

// DirSaver writes into Dir. Existing files are never overwritten: a repeated
// name gets " (1)", " (2)", ... inserted before its extension.
type DirSaver struct {
	mu  sync.RWMutex
	dir string
}

// NewDirSaver creates a saver for dir
func NewDirSaver(dir string) *DirSaver {
	return &DirSaver{dir: dir}
}

// Dir returns the current target directory
func (s *DirSaver) Dir() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.dir
}

// SetDir changes the target directory for later saves
func (s *DirSaver) SetDir(dir string) {
	s.mu.Lock()
	s.dir = dir
	s.mu.Unlock()
}

// Save writes data to a free name derived from name
func (s *DirSaver) Save(name string, data []byte) (string, error) {
	if err := ValidateName(name); err != nil {
		return "", err
	}

	dir := s.Dir()
	if err := platform.CreateDirectoryIfNotExists(dir); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	ext := filepath.Ext(name)
	stem := strings.TrimSuffix(name, ext)

	for attempt := 0; attempt < MaxNameAttempts; attempt++ {
		candidate := name
		if attempt > 0 {
			candidate = fmt.Sprintf("%s (%d)%s", stem, attempt, ext)
		}
		path := filepath.Join(dir, candidate)

		// O_EXCL claims the name so concurrent saves never share a file
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, DefaultFilePermissions)
		if errors.Is(err, os.ErrExist) {
			continue
		}
		if err != nil {
			return "", fmt.Errorf("failed to create %s: %w", path, err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			os.Remove(path)
			return "", fmt.Errorf("failed to write %s: %w", path, err)
		}
		if err := f.Close(); err != nil {
			os.Remove(path)
			return "", fmt.Errorf("failed to close %s: %w", path, err)
		}
		return path, nil
	}

	return "", fmt.Errorf("no free file name for %s in %s", name, dir)
}

// ValidateName rejects empty names, path separators and dot segments
func ValidateName(name string) error {
	if name == "" || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	if strings.ContainsAny(name, `/\`) || strings.ContainsRune(name, 0) {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}
