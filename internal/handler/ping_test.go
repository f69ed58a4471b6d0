package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hopebridge/internal/cache"
	"hopebridge/internal/database"

	"github.com/labstack/echo/v4"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

func TestPingHandler(t *testing.T) {
	newCtx := func() (echo.Context, *httptest.ResponseRecorder) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		return e.NewContext(req, rec), rec
	}

	t.Run("ok", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		cch := &cache.FakeCache{GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", redis.Nil)
		}}
		ctx, rec := newCtx()
		require.NoError(t, PingHandler(db, cch)(ctx))
		require.Equal(t, http.StatusOK, rec.Code)
		require.Contains(t, rec.Body.String(), "pong")
	})

	t.Run("database down", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return errors.New("down") }}
		ctx, rec := newCtx()
		require.NoError(t, PingHandler(db, &cache.FakeCache{})(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "database unhealthy")
	})

	t.Run("cache down", func(t *testing.T) {
		db := &database.FakeDB{PingFn: func(context.Context) error { return nil }}
		cch := &cache.FakeCache{GetFn: func(ctx context.Context, key string) *redis.StringCmd {
			return redis.NewStringResult("", errors.New("refused"))
		}}
		ctx, rec := newCtx()
		require.NoError(t, PingHandler(db, cch)(ctx))
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, rec.Body.String(), "cache unhealthy")
	})
}
