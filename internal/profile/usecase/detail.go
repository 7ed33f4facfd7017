package usecase

import (
	"context"
	"errors"
	"strings"

	"task-portal/internal/model"
	"task-portal/internal/profile"
	"task-portal/internal/profile/repository"
	"task-portal/pkg/metrics"
)

// Detail returns the profile for id. The id is used verbatim; blank ids and
// ids with surrounding whitespace are rejected. Only successful loads are cached.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.UserProfile, error) {
	if id == "" || strings.TrimSpace(id) != id {
		return model.UserProfile{}, profile.ErrInvalidID
	}

	if p, ok := uc.cache.Get(id); ok {
		metrics.ProfileCacheLookups.WithLabelValues("hit").Inc()
		return p, nil
	}
	metrics.ProfileCacheLookups.WithLabelValues("miss").Inc()

	p, err := uc.repo.Detail(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.UserProfile{}, profile.ErrProfileNotFound
		}
		uc.l.Errorf(ctx, "profile.usecase.Detail: caller=%s id=%s: %v", sc.CallerID, id, err)
		return model.UserProfile{}, err
	}

	uc.cache.Add(id, p)
	return p, nil
}
