package usecase

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"task-portal/internal/model"
	"task-portal/internal/profile/repository"
	pkgLog "task-portal/pkg/log"
)

const (
	defaultCacheSize = 1000
	defaultCacheTTL  = 5 * time.Minute
)

// CacheConfig sizes the profile cache. Zero values fall back to defaults.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

type implUseCase struct {
	l     pkgLog.Logger
	repo  repository.ProfileRepository
	cache *expirable.LRU[string, model.UserProfile]
}

// New creates a new profile UseCase with an expiring LRU cache in front of repo.
func New(l pkgLog.Logger, repo repository.ProfileRepository, cfg CacheConfig) *implUseCase {
	if repo == nil {
		panic("profile/usecase: repo is required")
	}
	if cfg.Size <= 0 {
		cfg.Size = defaultCacheSize
	}
	if cfg.TTL <= 0 {
		cfg.TTL = defaultCacheTTL
	}
	return &implUseCase{
		l:     l,
		repo:  repo,
		cache: expirable.NewLRU[string, model.UserProfile](cfg.Size, nil, cfg.TTL),
	}
}
