package postgre

import (
	"context"

	"github.com/jackc/pgx/v5"

	"task-portal/internal/profile/repository"
	"task-portal/pkg/log"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type implRepository struct {
	db DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed profile repository.
func New(db DB, l log.Logger) repository.ProfileRepository {
	if db == nil {
		panic("profile/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}
