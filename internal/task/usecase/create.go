package usecase

import (
	"context"

	"task-portal/internal/model"
	"task-portal/internal/task"
	"task-portal/internal/task/repository"
	"task-portal/pkg/metrics"
)

// Create forwards {title, description} to the task store once.
// The store's error is returned unchanged so callers can match it by identity.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input task.CreateInput) error {
	created, err := uc.repo.CreateTask(ctx, repository.CreateTaskOptions{
		Title:       input.Title,
		Description: input.Description,
	})
	if err != nil {
		metrics.TasksCreatedTotal.WithLabelValues(uc.driver, "error").Inc()
		uc.l.Errorf(ctx, "task.usecase.Create: caller=%s store=%s: %v", sc.CallerID, uc.driver, err)
		return err
	}

	metrics.TasksCreatedTotal.WithLabelValues(uc.driver, "ok").Inc()
	uc.l.Infof(ctx, "task.usecase.Create: caller=%s store=%s id=%s", sc.CallerID, uc.driver, created.ID)
	return nil
}
