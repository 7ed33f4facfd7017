package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"task-portal/internal/model"
	"task-portal/internal/profile/repository"
)

const detailQuery = `SELECT id, full_name, role FROM profiles WHERE id = $1`

func (r *implRepository) Detail(ctx context.Context, id string) (model.UserProfile, error) {
	var (
		p    model.UserProfile
		role string
	)
	err := r.db.QueryRow(ctx, detailQuery, id).Scan(&p.ID, &p.FullName, &role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.UserProfile{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "profile/repository/postgre.Detail: %v", err)
		return model.UserProfile{}, fmt.Errorf("select profile: %w", err)
	}

	p.Role, err = model.ParseRole(role)
	if err != nil {
		r.l.Warnf(ctx, "profile/repository/postgre.Detail: profile %s: %v", id, err)
		return model.UserProfile{}, err
	}
	return p, nil
}
