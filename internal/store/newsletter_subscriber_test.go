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
	"github.com/stretchr/testify/require"
)

type fakeSubscriberRow struct {
	scanErr  error
	sub      *model.NewsletterSubscriber
	inserted bool
}

func (r *fakeSubscriberRow) Scan(dest ...any) error {
	if r.scanErr != nil {
		return r.scanErr
	}
	s := r.sub
	switch len(dest) {
	case 6:
		*dest[0].(*uuid.UUID) = s.ID
		*dest[1].(*string) = s.Email
		*dest[2].(*string) = s.Name
		*dest[3].(*string) = s.Status
		*dest[4].(*time.Time) = s.CreatedAt
		*dest[5].(*time.Time) = s.UpdatedAt
	case 5:
		// Subscribe: id, status, created_at, updated_at, inserted
		*dest[0].(*uuid.UUID) = s.ID
		*dest[1].(*string) = s.Status
		*dest[2].(*time.Time) = s.CreatedAt
		*dest[3].(*time.Time) = s.UpdatedAt
		*dest[4].(*bool) = r.inserted
	default:
		panic("fakeSubscriberRow.Scan: unexpected dest count")
	}
	return nil
}

func TestSubscribe(t *testing.T) {
	now := time.Now().UTC()
	id := uuid.New()

	t.Run("new subscriber", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeSubscriberRow{
					sub:      &model.NewsletterSubscriber{ID: id, Status: "active", CreatedAt: now, UpdatedAt: now},
					inserted: true,
				}
			},
		}
		s := &model.NewsletterSubscriber{Email: "alice@example.com"}
		created, err := Subscribe(context.Background(), db, s)
		require.NoError(t, err)
		require.True(t, created)
		require.Equal(t, "active", s.Status)
	})

	t.Run("duplicate email reactivates", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeSubscriberRow{
					sub:      &model.NewsletterSubscriber{ID: id, Status: "active", CreatedAt: now, UpdatedAt: now},
					inserted: false,
				}
			},
		}
		created, err := Subscribe(context.Background(), db, &model.NewsletterSubscriber{Email: "alice@example.com"})
		require.NoError(t, err)
		require.False(t, created)
	})

	t.Run("scan error", func(t *testing.T) {
		db := &database.FakeDB{
			QueryRowFn: func(_ context.Context, _ string, _ ...any) pgx.Row {
				return &fakeSubscriberRow{scanErr: errors.New("boom")}
			},
		}
		_, err := Subscribe(context.Background(), db, &model.NewsletterSubscriber{})
		require.Error(t, err)
	})
}
