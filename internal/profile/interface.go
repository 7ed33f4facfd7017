package profile

import (
	"context"

	"task-portal/internal/model"
)

// UseCase defines the read path for user profiles.
type UseCase interface {
	Detail(ctx context.Context, sc model.Scope, id string) (model.UserProfile, error)
}
