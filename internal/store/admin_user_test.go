package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"hopebridge/internal/database"
	"hopebridge/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

type fakeAdminRow struct {
	scanErr error
	admin   *model.AdminUser
}

func (r *fakeAdminRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	u := r.admin
	*dest[0].(*uuid.UUID) = u.ID
	*dest[1].(*string) = u.Email
	*dest[2].(*string) = u.PasswordHash
	*dest[3].(*string) = u.Name
	*dest[4].(*string) = u.Role
	*dest[5].(*bool) = u.IsActive
	*dest[6].(*time.Time) = u.CreatedAt
	return nil
}

func TestAdminUserStore(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()
	sample := &model.AdminUser{
		ID:           id,
		Email:        "admin@hopebridge.org",
		PasswordHash: "hash",
		Name:         "Site Admin",
		Role:         "owner",
		IsActive:     true,
		CreatedAt:    now,
	}

	t.Run("GetByEmail ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeAdminRow{admin: sample}
			},
		}
		u, err := GetAdminUserByEmail(context.Background(), db, "admin@hopebridge.org")
		require.NoError(t, err)
		require.Equal(t, id, u.ID)
		require.True(t, u.IsActive)
	})

	t.Run("GetByEmail not found", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeAdminRow{scanErr: pgx.ErrNoRows}
			},
		}
		_, err := GetAdminUserByEmail(context.Background(), db, "nobody@example.com")
		require.Error(t, err)
	})

	t.Run("GetByID ok", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeAdminRow{admin: sample}
			},
		}
		u, err := GetAdminUserByID(context.Background(), db, id)
		require.NoError(t, err)
		require.Equal(t, "owner", u.Role)
	})

	t.Run("Seed inserts only when empty", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
				gotSQL = sql
				return pgconn.NewCommandTag("INSERT 0 1"), nil
			},
		}
		require.NoError(t, SeedAdminUser(context.Background(), db, "admin@hopebridge.org", "hash"))
		require.Contains(t, gotSQL, "WHERE NOT EXISTS")
	})

	t.Run("Seed exec error", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.CommandTag{}, errors.New("down")
			},
		}
		require.Error(t, SeedAdminUser(context.Background(), db, "a", "h"))
	})

	t.Run("UpdatePassword ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateAdminUserPassword(context.Background(), db, id, "newhash"))
	})
}
