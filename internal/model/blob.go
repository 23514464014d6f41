package model

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
)

// Blob is an in-memory file: its bytes, declared media type and name.
// A Blob passed to an operation belongs to that operation; results are
// returned as new Blobs.
type Blob struct {
	Name      string
	MediaType string
	Data      []byte
	ModTime   time.Time
}

// NewBlob creates a blob stamped with the current time
func NewBlob(name, mediaType string, data []byte) *Blob {
	return &Blob{
		Name:      name,
		MediaType: mediaType,
		Data:      data,
		ModTime:   time.Now(),
	}
}

// LoadBlob reads a file from disk. The media type is sniffed from the
// file content rather than trusted from the extension.
func LoadBlob(path string) (*Blob, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	modTime := time.Now()
	if info, err := os.Stat(path); err == nil {
		modTime = info.ModTime()
	}

	return &Blob{
		Name:      filepath.Base(path),
		MediaType: DetectMediaType(data),
		Data:      data,
		ModTime:   modTime,
	}, nil
}

// DetectMediaType sniffs the media type of data, without parameters
func DetectMediaType(data []byte) string {
	mediaType, _, _ := strings.Cut(mimetype.Detect(data).String(), ";")
	return strings.TrimSpace(mediaType)
}

// Size returns the blob length in bytes
func (b *Blob) Size() int64 {
	if b == nil {
		return 0
	}
	return int64(len(b.Data))
}
