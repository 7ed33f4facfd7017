package postgre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"task-portal/internal/task/repository"
	"task-portal/pkg/log"
)

// DB is the subset of *pgxpool.Pool the repository needs.
type DB interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

type implRepository struct {
	db DB
	l  log.Logger
}

// New creates a new PostgreSQL-backed task repository.
func New(db DB, l log.Logger) repository.TaskRepository {
	if db == nil {
		panic("task/repository/postgre: db is required")
	}
	return &implRepository{db: db, l: l}
}

// dsn is a helper to return a method-scoped context string for logging.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("task/repository/postgre.%s", method)
}
