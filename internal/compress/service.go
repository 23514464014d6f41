package compress

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/ytget/imgdrop/internal/model"
	"github.com/ytget/imgdrop/internal/storage"
)

// Service tracks compressions started from the UI and saves their output
type Service struct {
	tasks      map[string]*model.CompressionTask
	tasksMutex sync.RWMutex
	opts       Options
	saver      storage.Saver
	logger     *zap.Logger
	onUpdate   func(*model.CompressionTask) // callback for UI updates
	wg         sync.WaitGroup
}

// NewService creates a new compression service. A nil saver keeps results
// in memory only; a nil logger discards logs.
func NewService(saver storage.Saver, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		tasks:  make(map[string]*model.CompressionTask),
		saver:  saver,
		logger: logger.Named("compress"),
	}
}

// SetUpdateCallback sets the callback function for task updates
func (s *Service) SetUpdateCallback(callback func(*model.CompressionTask)) {
	s.tasksMutex.Lock()
	s.onUpdate = callback
	s.tasksMutex.Unlock()
}

// SetOptions sets the options used by later compressions
func (s *Service) SetOptions(opts Options) {
	s.tasksMutex.Lock()
	s.opts = opts
	s.tasksMutex.Unlock()
}

// StartCompression validates blob and starts compressing it in the
// background. Validation errors are returned without registering a task.
func (s *Service) StartCompression(blob *model.Blob) (*model.CompressionTask, error) {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	if blob != nil {
		// Check if compression is already in progress for this file
		for _, task := range s.tasks {
			if task.InputName == blob.Name && task.Status.IsActive() {
				return nil, fmt.Errorf("compression already in progress for file: %s", blob.Name)
			}
		}
	}

	results, err := CompressAsync(context.Background(), blob, s.opts)
	if err != nil {
		return nil, err
	}

	task := &model.CompressionTask{
		ID:         generateTaskID(),
		InputName:  blob.Name,
		OutputName: WebPName(blob.Name),
		Status:     model.TaskStatusProcessing,
		InputSize:  blob.Size(),
		StartedAt:  time.Now(),
	}
	s.tasks[task.ID] = task

	s.wg.Add(1)
	go s.awaitResult(task, results)

	snapshot := *task
	return &snapshot, nil
}

// awaitResult records the pipeline result and saves the output
func (s *Service) awaitResult(task *model.CompressionTask, results <-chan Result) {
	defer s.wg.Done()

	res := <-results

	var outputPath string
	err := res.Err
	if err == nil && s.saver != nil {
		outputPath, err = s.saver.Save(res.Blob.Name, res.Blob.Data)
		if err != nil {
			err = fmt.Errorf("failed to save %s: %w", res.Blob.Name, err)
		}
	}

	s.tasksMutex.Lock()
	task.Width, task.Height = res.Source.X, res.Source.Y
	task.OutWidth, task.OutHeight = res.Target.X, res.Target.Y
	if err != nil {
		task.Status = model.TaskStatusError
		task.LastError = err.Error()
	} else {
		task.Status = model.TaskStatusCompleted
		task.OutputSize = res.Blob.Size()
		task.OutputName = res.Blob.Name
		task.OutputPath = outputPath
	}
	task.FinishedAt = time.Now()
	s.tasksMutex.Unlock()

	if err != nil {
		s.logger.Warn("compression failed",
			zap.String("task", task.ID),
			zap.String("input", task.InputName),
			zap.Error(err))
	} else {
		s.logger.Info("compression completed",
			zap.String("task", task.ID),
			zap.String("output", task.OutputName),
			zap.Int64("input_bytes", task.InputSize),
			zap.Int64("output_bytes", task.OutputSize),
			zap.Duration("took", task.FinishedAt.Sub(task.StartedAt)))
	}

	s.notifyUpdate(task)
}

// GetTask returns a copy of a compression task by ID
func (s *Service) GetTask(taskID string) (*model.CompressionTask, bool) {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()
	task, exists := s.tasks[taskID]
	if !exists {
		return nil, false
	}
	snapshot := *task
	return &snapshot, true
}

// GetAllTasks returns copies of all tasks, oldest first
func (s *Service) GetAllTasks() []*model.CompressionTask {
	s.tasksMutex.RLock()
	defer s.tasksMutex.RUnlock()

	tasks := make([]*model.CompressionTask, 0, len(s.tasks))
	for _, task := range s.tasks {
		snapshot := *task
		tasks = append(tasks, &snapshot)
	}
	sort.Slice(tasks, func(i, j int) bool {
		return tasks[i].StartedAt.Before(tasks[j].StartedAt)
	})
	return tasks
}

// RemoveTask forgets a finished task
func (s *Service) RemoveTask(taskID string) error {
	s.tasksMutex.Lock()
	defer s.tasksMutex.Unlock()

	task, exists := s.tasks[taskID]
	if !exists {
		return fmt.Errorf("compression task not found: %s", taskID)
	}
	if task.Status.IsActive() {
		return fmt.Errorf("compression task is still active: %s", task.Status)
	}
	delete(s.tasks, taskID)
	return nil
}

// Wait blocks until every started compression has finished
func (s *Service) Wait() {
	s.wg.Wait()
}

// notifyUpdate calls the update callback, if set, with a copy of task
func (s *Service) notifyUpdate(task *model.CompressionTask) {
	s.tasksMutex.RLock()
	callback := s.onUpdate
	snapshot := *task
	s.tasksMutex.RUnlock()

	if callback != nil {
		callback(&snapshot)
	}
}

// generateTaskID generates a unique task ID using UUID v7 for better uniqueness and time ordering
func generateTaskID() string {
	id, err := uuid.NewV7()
	if err != nil {
		// Fallback to timestamp if UUID generation fails
		return fmt.Sprintf(TaskIDPrefix+"%d", time.Now().UnixNano())
	}
	return TaskIDPrefix + id.String()
}
