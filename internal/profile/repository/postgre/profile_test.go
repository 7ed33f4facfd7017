package postgre_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-portal/internal/model"
	"task-portal/internal/profile/repository"
	"task-portal/internal/profile/repository/postgre"
	"task-portal/internal/testutil"
	pkgLog "task-portal/pkg/log"
)

type fakeRow struct {
	values []string
	err    error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	for i, v := range r.values {
		*dest[i].(*string) = v
	}
	return nil
}

type fakeDB struct {
	row  fakeRow
	args []any
}

func (f *fakeDB) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	f.args = args
	return f.row
}

func TestDetail(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{values: []string{"u1", "Ana Souza", "manager"}}}
		p, err := postgre.New(db, pkgLog.NewNop()).Detail(ctx, "u1")
		require.NoError(t, err)
		assert.Equal(t, model.UserProfile{ID: "u1", FullName: "Ana Souza", Role: model.RoleManager}, p)
		assert.Equal(t, []any{"u1"}, db.args)
	})

	t.Run("no rows", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{err: pgx.ErrNoRows}}
		_, err := postgre.New(db, pkgLog.NewNop()).Detail(ctx, "missing")
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})

	t.Run("unknown role", func(t *testing.T) {
		db := &fakeDB{row: fakeRow{values: []string{"u2", "Bruno", "superuser"}}}
		_, err := postgre.New(db, pkgLog.NewNop()).Detail(ctx, "u2")
		assert.ErrorIs(t, err, model.ErrInvalidRole)
	})

	t.Run("query error is wrapped", func(t *testing.T) {
		queryErr := errors.New("connection refused")
		db := &fakeDB{row: fakeRow{err: queryErr}}
		_, err := postgre.New(db, pkgLog.NewNop()).Detail(ctx, "u3")
		assert.ErrorIs(t, err, queryErr)
	})
}

func TestDetailIntegration(t *testing.T) {
	pool := testutil.StartPostgres(t)
	ctx := context.Background()

	_, err := pool.Exec(ctx, `INSERT INTO profiles (id, full_name, role) VALUES ('a1', 'Carla Lima', 'admin'), ('x1', 'Legacy', 'owner')`)
	require.NoError(t, err)

	repo := postgre.New(pool, pkgLog.NewNop())

	p, err := repo.Detail(ctx, "a1")
	require.NoError(t, err)
	assert.Equal(t, model.RoleAdmin, p.Role)
	assert.Equal(t, "Carla Lima", p.FullName)

	_, err = repo.Detail(ctx, "x1")
	assert.ErrorIs(t, err, model.ErrInvalidRole)

	_, err = repo.Detail(ctx, "nobody")
	assert.ErrorIs(t, err, repository.ErrNotFound)
}
