package admin

import (
	"context"
	"net/http"
	"testing"

	"hopebridge/internal/database"
	"hopebridge/internal/schema"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"
)

func TestCreateContactMessageHandler(t *testing.T) {
	t.Run("missing message rejected before insert", func(t *testing.T) {
		// FakeDB has no QueryRowFn, so an attempted insert would panic
		db := &database.FakeDB{ExecFn: ddlExec}
		ctx, rec := newJSONCtx(http.MethodPost, "/", `{"name":"Chen","email":"chen@example.org"}`)
		require.NoError(t, CreateContactMessageHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created with pending status", func(t *testing.T) {
		id := uuid.New()
		db := &database.FakeDB{
			ExecFn: ddlExec,
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO contact_messages")
				require.Equal(t, "chen@example.org", args[1])
				return fakeCreatedRow{id: id, status: "Pending"}
			},
		}
		ctx, rec := newJSONCtx(http.MethodPost, "/",
			`{"name":"Chen","email":"chen@example.org","message":"relayed by phone"}`)
		require.NoError(t, CreateContactMessageHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), id.String())
	})
}
