package admin

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hopebridge/internal/cache"
	"hopebridge/internal/database"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"

	"github.com/google/uuid"
	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

type structValidator struct{ v *validator.Validate }

func (s structValidator) Validate(i any) error { return s.v.Struct(i) }

func newJSONCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = structValidator{validator.New()}
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func ddlExec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

type fakeGalleryCreateRow struct{ img model.GalleryImage }

func (r fakeGalleryCreateRow) Scan(dest ...any) error {
	*dest[0].(*uuid.UUID) = r.img.ID
	*dest[1].(*string) = r.img.Status
	*dest[2].(*time.Time) = r.img.CreatedAt
	*dest[3].(*time.Time) = r.img.UpdatedAt
	return nil
}

func TestCreateGalleryImageHandler(t *testing.T) {
	t.Run("missing required field rejected before insert", func(t *testing.T) {
		// FakeDB has no QueryRowFn, so an attempted insert would panic
		db := &database.FakeDB{ExecFn: ddlExec}
		ctx, rec := newJSONCtx(http.MethodPost, "/", `{"description":"no title or url"}`)

		h := CreateGalleryImageHandler(db, &cache.FakeCache{}, schema.New(db))
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("success invalidates public cache", func(t *testing.T) {
		img := model.GalleryImage{ID: uuid.New(), Status: "active"}
		var deleted []string
		db := &database.FakeDB{
			ExecFn: ddlExec,
			QueryRowFn: func(_ context.Context, sql string, _ ...any) pgx.Row {
				require.Contains(t, sql, "INSERT INTO gallery_images")
				return fakeGalleryCreateRow{img: img}
			},
		}
		cch := &cache.FakeCache{DelFn: func(ctx context.Context, keys ...string) *redis.IntCmd {
			deleted = append(deleted, keys...)
			return redis.NewIntResult(1, nil)
		}}
		ctx, rec := newJSONCtx(http.MethodPost, "/", `{"title":"t","image_url":"https://e.org/a.jpg"}`)

		h := CreateGalleryImageHandler(db, cch, schema.New(db))
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusCreated, rec.Code)
		require.Contains(t, rec.Body.String(), img.ID.String())
		require.Equal(t, []string{cache.PublicKey("gallery")}, deleted)
	})
}

func TestUpdateGalleryImageHandler(t *testing.T) {
	t.Run("bad id", func(t *testing.T) {
		ctx, rec := newJSONCtx(http.MethodPut, "/?id=not-a-uuid", `{}`)
		h := UpdateGalleryImageHandler(&database.FakeDB{}, &cache.FakeCache{}, schema.New(&database.FakeDB{}))
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
			if strings.HasPrefix(sql, "UPDATE") {
				return pgconn.NewCommandTag("UPDATE 0"), nil
			}
			return pgconn.NewCommandTag("CREATE TABLE"), nil
		}}
		ctx, rec := newJSONCtx(http.MethodPut, "/?id="+uuid.NewString(),
			`{"title":"t","image_url":"https://e.org/a.jpg","status":"active"}`)
		h := UpdateGalleryImageHandler(db, &cache.FakeCache{}, schema.New(db))
		require.NoError(t, h(ctx))
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestDeleteGalleryImageHandler(t *testing.T) {
	db := &database.FakeDB{ExecFn: func(_ context.Context, sql string, _ ...any) (pgconn.CommandTag, error) {
		if strings.HasPrefix(sql, "DELETE") {
			return pgconn.NewCommandTag("DELETE 1"), nil
		}
		return pgconn.NewCommandTag("CREATE TABLE"), nil
	}}
	ctx, rec := newJSONCtx(http.MethodDelete, "/?id="+uuid.NewString(), "")
	h := DeleteGalleryImageHandler(db, &cache.FakeCache{}, schema.New(db))
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)
}
