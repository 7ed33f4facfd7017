package repository

import (
	"context"
	"errors"

	"task-portal/internal/model"
)

// ErrNotFound is returned when no profile matches the id.
var ErrNotFound = errors.New("profile: not found")

// ProfileRepository loads profiles from the identity store.
type ProfileRepository interface {
	Detail(ctx context.Context, id string) (model.UserProfile, error)
}
