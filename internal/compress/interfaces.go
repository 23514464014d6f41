package compress

import (
	"github.com/ytget/imgdrop/internal/model"
)

// Compressor defines the interface for the compression service.
type Compressor interface {
	SetUpdateCallback(func(*model.CompressionTask))
	SetOptions(opts Options)
	StartCompression(blob *model.Blob) (*model.CompressionTask, error)
	GetTask(taskID string) (*model.CompressionTask, bool)
	GetAllTasks() []*model.CompressionTask
	RemoveTask(taskID string) error
	Wait()
}

var _ Compressor = (*Service)(nil)
