// File: internal/handler/admin/helpers.go

// Package admin holds the session-gated content management handlers. Every
// handler ensures its domain tables exist before touching them, so a fresh
// database needs no out-of-band migration step.
package admin

import (
	"context"
	"net/http"

	"hopebridge/internal/api"
	"hopebridge/internal/cache"
	"hopebridge/internal/schema"
	"hopebridge/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// serverError logs the cause and answers with a generic message. The
// underlying error only reaches the client in debug mode.
func serverError(c echo.Context, err error) error {
	c.Logger().Error(err)
	msg := "internal server error"
	if c.Echo().Debug {
		msg = err.Error()
	}
	return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: msg})
}

// parseID reads the target row id from the ?id= query parameter.
func parseID(c echo.Context) (uuid.UUID, error) {
	return uuid.Parse(c.QueryParam("id"))
}

// invalidate drops the cached public listing for a domain after a write.
func invalidate(ctx context.Context, cch cache.Cache, d schema.Domain) {
	cch.Del(ctx, cache.PublicKey(string(d)))
}

// notFoundOrServerError maps store.ErrNotFound to 404 and anything else to
// a 500.
func notFoundOrServerError(c echo.Context, err error) error {
	if err == store.ErrNotFound {
		return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "not found"})
	}
	return serverError(c, err)
}
