package task

import (
	"context"

	"task-portal/internal/model"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// Create forwards a new task to the task store. A store failure is returned as-is.
	Create(ctx context.Context, sc model.Scope, input CreateInput) error
}
