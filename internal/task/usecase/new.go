package usecase

import (
	"task-portal/internal/task/repository"
	pkgLog "task-portal/pkg/log"
)

type implUseCase struct {
	l      pkgLog.Logger
	repo   repository.TaskRepository
	driver string
}

// New creates a new task UseCase instance. driver names the store for metrics.
func New(l pkgLog.Logger, repo repository.TaskRepository, driver string) *implUseCase {
	if repo == nil {
		panic("task/usecase: repo is required")
	}
	return &implUseCase{
		l:      l,
		repo:   repo,
		driver: driver,
	}
}
