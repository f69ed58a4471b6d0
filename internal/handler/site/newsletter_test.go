package site

import (
	"context"
	"net/http"
	"testing"
	"time"

	"hopebridge/internal/database"
	"hopebridge/internal/schema"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

type fakeSubscribeRow struct {
	id       uuid.UUID
	inserted bool
}

func (r fakeSubscribeRow) Scan(dest ...any) error {
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*string) = "active"
	*dest[2].(*time.Time) = time.Now()
	*dest[3].(*time.Time) = time.Now()
	*dest[4].(*bool) = r.inserted
	return nil
}

func TestSubscribeHandler(t *testing.T) {
	t.Run("new subscriber", func(t *testing.T) {
		var gotEmail string
		db := &database.FakeDB{
			ExecFn: ddlExec,
			QueryRowFn: func(_ context.Context, _ string, args ...any) pgx.Row {
				gotEmail = args[0].(string)
				return fakeSubscribeRow{id: uuid.New(), inserted: true}
			},
		}
		ctx, rec := newSiteCtx(http.MethodPost, "/", `{"email":"Ada@Example.org"}`)

		require.NoError(t, SubscribeHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Equal(t, "ada@example.org", gotEmail)
	})

	t.Run("repeat subscription is idempotent", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: ddlExec,
			QueryRowFn: func(context.Context, string, ...any) pgx.Row {
				return fakeSubscribeRow{id: uuid.New(), inserted: false}
			},
		}
		ctx, rec := newSiteCtx(http.MethodPost, "/", `{"email":"ada@example.org"}`)

		require.NoError(t, SubscribeHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "already subscribed")
	})

	t.Run("invalid email rejected", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: ddlExec}
		ctx, rec := newSiteCtx(http.MethodPost, "/", `{"email":"not-an-email"}`)

		require.NoError(t, SubscribeHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
