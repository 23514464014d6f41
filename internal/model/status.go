package model

// TaskStatus represents the status of a compression task
type TaskStatus string

const (
	// TaskStatusPending means the task is registered but not started
	TaskStatusPending TaskStatus = "Pending"

	// TaskStatusProcessing means the image is being decoded, resized and encoded
	TaskStatusProcessing TaskStatus = "Processing"

	// TaskStatusCompleted means the output was produced and saved
	TaskStatusCompleted TaskStatus = "Completed"

	// TaskStatusError means the task failed with an error
	TaskStatusError TaskStatus = "Error"
)

// String returns the string representation of TaskStatus
func (ts TaskStatus) String() string {
	return string(ts)
}

// IsActive returns true if the task is in an active state
func (ts TaskStatus) IsActive() bool {
	return ts == TaskStatusProcessing
}

// IsFinished returns true if the task is in a finished state (completed or error)
func (ts TaskStatus) IsFinished() bool {
	return ts == TaskStatusCompleted || ts == TaskStatusError
}
