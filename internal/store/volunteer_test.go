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

/* ---------- 假實作 ---------- */

// fakeVolunteerRow 支援兩種 Scan 呼叫場景：
// 1) len(dest)==9 → ListVolunteers
// 2) len(dest)==4 → CreateVolunteer (id, status, created_at, updated_at)
type fakeVolunteerRow struct {
	scanErr   error
	volunteer *model.Volunteer
}

func (r *fakeVolunteerRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	v := r.volunteer
	switch len(dest) {
	case 9:
		*dest[0].(*uuid.UUID) = v.ID
		*dest[1].(*string) = v.Name
		*dest[2].(*string) = v.Email
		*dest[3].(*string) = v.Phone
		*dest[4].(*string) = v.Interest
		*dest[5].(*string) = v.Message
		*dest[6].(*string) = v.Status
		*dest[7].(*time.Time) = v.CreatedAt
		*dest[8].(*time.Time) = v.UpdatedAt
	case 4:
		*dest[0].(*uuid.UUID) = v.ID
		*dest[1].(*string) = v.Status
		*dest[2].(*time.Time) = v.CreatedAt
		*dest[3].(*time.Time) = v.UpdatedAt
	default:
		panic("fakeVolunteerRow.Scan: unexpected dest count")
	}
	return nil
}

/* ---------- 完整測試 ---------- */

func TestVolunteerStore(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()

	t.Run("Create applies Pending default", func(t *testing.T) {
		var gotSQL string
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				gotSQL = sql
				return &fakeVolunteerRow{volunteer: &model.Volunteer{
					ID: id, Status: "Pending", CreatedAt: now, UpdatedAt: now,
				}}
			},
		}
		v := &model.Volunteer{Name: "Alice", Email: "alice@example.com"}
		got, err := CreateVolunteer(context.Background(), db, v)
		require.NoError(t, err)
		require.Equal(t, "Pending", got.Status)
		require.Equal(t, id, got.ID)
		// status column is omitted so the table default applies
		require.Contains(t, gotSQL, "(name, email, phone, interest, message)")
	})

	t.Run("Create scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeVolunteerRow{scanErr: errors.New("boom")}
			},
		}
		_, err := CreateVolunteer(context.Background(), db, &model.Volunteer{})
		require.Error(t, err)
	})

	t.Run("UpdateStatus ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 1"), nil
			},
		}
		require.NoError(t, UpdateVolunteerStatus(context.Background(), db, id, "Approved"))
	})

	t.Run("UpdateStatus not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			},
		}
		err := UpdateVolunteerStatus(context.Background(), db, id, "Approved")
		require.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("Delete not found", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 0"), nil
			},
		}
		require.ErrorIs(t, DeleteVolunteer(context.Background(), db, id), ErrNotFound)
	})

	t.Run("Delete ok", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: func(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
				return pgconn.NewCommandTag("DELETE 1"), nil
			},
		}
		require.NoError(t, DeleteVolunteer(context.Background(), db, id))
	})
}
