// File: internal/handler/site/helpers.go

// Package site holds the unauthenticated handlers behind the public
// website: published-content listings, engagement counters and the
// visitor-facing submission forms. Listings are served cache-aside from
// Redis with a short TTL; admin writes drop the key.
package site

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"hopebridge/internal/api"
	"hopebridge/internal/cache"
	"hopebridge/internal/schema"

	"github.com/labstack/echo/v4"
)

// serverError answers with a generic message; the cause only reaches the
// client in debug mode.
func serverError(c echo.Context, err error) error {
	c.Logger().Error(err)
	msg := "internal server error"
	if c.Echo().Debug {
		msg = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msg})
}

// listCached serves a public listing cache-aside: a Redis hit short-circuits
// the database, a miss fetches, stores and serves. Cache write failures are
// ignored; the response is already in hand.
func listCached[T any](c echo.Context, cch cache.Cache, d schema.Domain, fetch func(context.Context) ([]T, error)) error {
	ctx := c.Request().Context()
	key := cache.PublicKey(string(d))

	if blob, err := cch.Get(ctx, key).Bytes(); err == nil {
		return c.JSONBlob(http.StatusOK, blob)
	}

	items, err := fetch(ctx)
	if err != nil {
		return serverError(c, err)
	}
	blob, err := json.Marshal(items)
	if err != nil {
		return serverError(c, err)
	}
	cch.Set(ctx, key, blob, cache.PublicListTTLSeconds*time.Second)
	return c.JSONBlob(http.StatusOK, blob)
}
