package admin

import (
	"context"
	"net/http"
	"strings"
	"testing"
	"time"

	"hopebridge/internal/database"
	"hopebridge/internal/schema"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"
)

// fakeCreatedRow 對應 RETURNING id, status, created_at, updated_at。
type fakeCreatedRow struct {
	id     uuid.UUID
	status string
}

func (r fakeCreatedRow) Scan(dest ...any) error {
	*dest[0].(*uuid.UUID) = r.id
	*dest[1].(*string) = r.status
	*dest[2].(*time.Time) = time.Now()
	*dest[3].(*time.Time) = time.Now()
	return nil
}

func TestCreateVolunteerHandler(t *testing.T) {
	t.Run("missing email rejected before insert", func(t *testing.T) {
		// FakeDB has no QueryRowFn, so an attempted insert would panic
		db := &database.FakeDB{ExecFn: ddlExec}
		ctx, rec := newJSONCtx(http.MethodPost, "/", `{"name":"Lin"}`)
		require.NoError(t, CreateVolunteerHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("created with pending status", func(t *testing.T) {
		id := uuid.New()
		db := &database.FakeDB{
			ExecFn: ddlExec,
			QueryRowFn: func(_ context.Context, sql string, args ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO volunteers")
				require.Equal(t, "Lin", args[0])
				return fakeCreatedRow{id: id, status: "Pending"}
			},
		}
		ctx, rec := newJSONCtx(http.MethodPost, "/", `{"name":"Lin","email":"lin@example.org"}`)
		require.NoError(t, CreateVolunteerHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), id.String())
		require.Contains(t, rec.Body.String(), `"Pending"`)
	})
}

func TestUpdateVolunteerHandler(t *testing.T) {
	id := uuid.New()

	t.Run("rejects status outside the review set", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: ddlExec}
		ctx, rec := newJSONCtx(http.MethodPut, "/?id="+id.String(), `{"status":"Archived"}`)
		require.NoError(t, UpdateVolunteerHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("approves application", func(t *testing.T) {
		var gotStatus string
		db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
			if strings.HasPrefix(sql, "UPDATE volunteers") {
				gotStatus = args[0].(string)
				return pgconn.NewCommandTag("UPDATE 1"), nil
			}
			return pgconn.NewCommandTag("CREATE TABLE"), nil
		}}
		ctx, rec := newJSONCtx(http.MethodPut, "/?id="+id.String(), `{"status":"Approved"}`)
		require.NoError(t, UpdateVolunteerHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusNoContent, rec.Code)
		require.Equal(t, "Approved", gotStatus)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
			if strings.HasPrefix(sql, "UPDATE volunteers") {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			}
			return pgconn.NewCommandTag("CREATE TABLE"), nil
		}}
		ctx, rec := newJSONCtx(http.MethodPut, "/?id="+id.String(), `{"status":"Rejected"}`)
		require.NoError(t, UpdateVolunteerHandler(db, schema.New(db))(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteVolunteerHandler(t *testing.T) {
	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		if strings.HasPrefix(sql, "DELETE") {
			return pgconn.NewCommandTag("DELETE 1"), nil
		}
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	}}
	ctx, rec := newJSONCtx(http.MethodDelete, "/?id="+uuid.NewString(), "")
	require.NoError(t, DeleteVolunteerHandler(db, schema.New(db))(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
