package model

import (
	"fmt"
	"strings"
	"time"
)

// CompressionTask represents a single image recompression
type CompressionTask struct {
	ID         string
	InputName  string
	OutputName string
	OutputPath string // where the result was saved, empty until completed
	Status     TaskStatus
	LastError  string // last error message if any
	InputSize  int64  // bytes
	OutputSize int64  // bytes
	Width      int    // source dimensions
	Height     int
	OutWidth   int // rendered dimensions
	OutHeight  int
	StartedAt  time.Time
	FinishedAt time.Time
}

// SavedRatio returns the fraction of bytes saved, negative if the output grew
func (ct *CompressionTask) SavedRatio() float64 {
	if ct.InputSize <= 0 || ct.OutputSize <= 0 {
		return 0
	}
	return 1 - float64(ct.OutputSize)/float64(ct.InputSize)
}

// GetDimensionsString returns "WxH → WxH", or "—" before decoding
func (ct *CompressionTask) GetDimensionsString() string {
	if ct.Width == 0 || ct.Height == 0 {
		return "—"
	}
	if ct.OutWidth == 0 || ct.OutHeight == 0 {
		return fmt.Sprintf("%dx%d", ct.Width, ct.Height)
	}
	return fmt.Sprintf("%dx%d → %dx%d", ct.Width, ct.Height, ct.OutWidth, ct.OutHeight)
}

// GetDisplayTitle returns the input name without extension, falling back to the ID
func (ct *CompressionTask) GetDisplayTitle() string {
	name := ct.InputName
	if name == "" {
		return ct.ID
	}
	if idx := strings.LastIndex(name, "."); idx > 0 {
		name = name[:idx]
	}
	return name
}
