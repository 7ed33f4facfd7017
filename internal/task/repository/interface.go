package repository

import (
	"context"

	"task-portal/internal/model"
)

// TaskRepository is the external task-creation capability.
type TaskRepository interface {
	// CreateTask records a new task. Any returned error means the task was not created.
	CreateTask(ctx context.Context, opt CreateTaskOptions) (model.Task, error)
	// Ping reports whether the store is reachable.
	Ping(ctx context.Context) error
}
