package site

import (
	"context"
	"encoding/json"
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

func newSiteCtx(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = structValidator{validator.New()}
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func ddlExec(_ context.Context, _ string, _ ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

type fakeImageRows struct {
	data []model.GalleryImage
	idx  int
}

func (r *fakeImageRows) Close()                                       {}
func (r *fakeImageRows) Err() error                                   { return nil }
func (r *fakeImageRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeImageRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (r *fakeImageRows) Next() bool                                   { return r.idx < len(r.data) }
func (r *fakeImageRows) Scan(dest ...any) error {
	g := r.data[r.idx]
	r.idx++
	*dest[0].(*uuid.UUID) = g.ID
	*dest[1].(*string) = g.Title
	*dest[2].(*string) = g.Description
	*dest[3].(*string) = g.ImageURL
	*dest[4].(*string) = g.Category
	*dest[5].(*string) = g.Status
	*dest[6].(*time.Time) = g.CreatedAt
	*dest[7].(*time.Time) = g.UpdatedAt
	return nil
}
func (r *fakeImageRows) Values() ([]any, error) { return nil, nil }
func (r *fakeImageRows) RawValues() [][]byte    { return nil }
func (r *fakeImageRows) Conn() *pgx.Conn        { return nil }

func TestListGalleryHandler(t *testing.T) {
	image := model.GalleryImage{ID: uuid.New(), Title: "Clinic opening", Status: "active"}

	t.Run("cache hit skips the database", func(t *testing.T) {
		blob, _ := json.Marshal([]model.GalleryImage{image})
		// FakeDB has no QueryFn, a database read would panic
		db := &database.FakeDB{ExecFn: ddlExec}
		cch := &cache.FakeCache{GetFn: func(_ context.Context, key string) *redis.StringCmd {
			require.Equal(t, cache.PublicKey("gallery"), key)
			return redis.NewStringResult(string(blob), nil)
		}}

		ctx, rec := newSiteCtx(http.MethodGet, "/", "")
		require.NoError(t, ListGalleryHandler(db, cch, schema.New(db))(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), image.ID.String())
	})

	t.Run("cache miss fetches and repopulates", func(t *testing.T) {
		db := &database.FakeDB{
			ExecFn: ddlExec,
			QueryFn: func(_ context.Context, sql string, _ ...any) (pgx.Rows, error) {
				require.Contains(t, sql, "status = 'active'")
				return &fakeImageRows{data: []model.GalleryImage{image}}, nil
			},
		}
		var setKey string
		var setTTL time.Duration
		cch := &cache.FakeCache{
			GetFn: func(_ context.Context, key string) *redis.StringCmd {
				return redis.NewStringResult("", redis.Nil)
			},
			SetFn: func(_ context.Context, key string, _ any, ttl time.Duration) *redis.StatusCmd {
				setKey = key
				setTTL = ttl
				return redis.NewStatusResult("OK", nil)
			},
		}

		ctx, rec := newSiteCtx(http.MethodGet, "/", "")
		require.NoError(t, ListGalleryHandler(db, cch, schema.New(db))(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), image.ID.String())
		require.Equal(t, cache.PublicKey("gallery"), setKey)
		require.Equal(t, cache.PublicListTTLSeconds*time.Second, setTTL)
	})
}
