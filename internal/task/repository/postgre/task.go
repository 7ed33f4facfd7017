package postgre

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"task-portal/internal/model"
	"task-portal/internal/task/repository"
)

// CreateTask inserts a task row. When no description was given the column is
// left out of the statement entirely so the column default applies.
func (r *implRepository) CreateTask(ctx context.Context, opt repository.CreateTaskOptions) (model.Task, error) {
	query, args := r.buildInsertQuery(uuid.NewString(), opt)

	var task model.Task
	err := r.db.QueryRow(ctx, query, args...).Scan(
		&task.ID, &task.Title, &task.Description, &task.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("CreateTask"), err)
		return model.Task{}, fmt.Errorf("insert task: %w", err)
	}
	return task, nil
}

func (r *implRepository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *implRepository) buildInsertQuery(id string, opt repository.CreateTaskOptions) (string, []any) {
	cols := []string{"id", "title"}
	args := []any{id, opt.Title}
	if opt.HasDescription() {
		cols = append(cols, "description")
		args = append(args, *opt.Description)
	}

	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
	}

	query := fmt.Sprintf(
		`INSERT INTO tasks (%s) VALUES (%s) RETURNING id::text, title, description, created_at`,
		strings.Join(cols, ", "), strings.Join(placeholders, ", "),
	)
	return query, args
}
