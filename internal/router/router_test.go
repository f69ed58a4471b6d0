package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"hopebridge/internal/cache"
	"hopebridge/internal/database"
	"hopebridge/internal/mailer"
	"hopebridge/internal/schema"
	"hopebridge/internal/stats"
	"hopebridge/internal/worker"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()
	e := echo.New()
	db := &database.FakeDB{}
	pool := worker.NewPool(1)
	t.Cleanup(pool.Stop)
	Setup(e, db, &cache.FakeCache{}, schema.New(db), stats.NewBuffer(db), mailer.New(mailer.Config{}, pool), false)
	return e
}

func TestSetupRoutes(t *testing.T) {
	e := newTestEcho(t)

	got := map[string]struct{}{}
	for _, r := range e.Routes() {
		got[r.Method+" "+r.Path] = struct{}{}
	}

	expected := []string{
		http.MethodGet + " /api/ping",
		http.MethodPost + " /api/auth/login",
		http.MethodPost + " /api/auth/logout",
		http.MethodGet + " /api/auth/me",
		http.MethodPut + " /api/auth/me/password",
		http.MethodGet + " /api/blog",
		http.MethodGet + " /api/blog/:slug",
		http.MethodGet + " /api/stories",
		http.MethodGet + " /api/stories/:slug",
		http.MethodPost + " /api/stories/:id/like",
		http.MethodGet + " /api/videos",
		http.MethodPost + " /api/videos/:id/view",
		http.MethodGet + " /api/gallery",
		http.MethodGet + " /api/team",
		http.MethodGet + " /api/tenders",
		http.MethodPost + " /api/tenders/:id/download",
		http.MethodGet + " /api/jobs",
		http.MethodGet + " /api/reports",
		http.MethodPost + " /api/reports/:id/download",
		http.MethodPost + " /api/contact",
		http.MethodPost + " /api/volunteers",
		http.MethodPost + " /api/newsletter",
	}
	adminDomains := []string{
		"blog", "stories", "videos", "gallery", "team", "tenders",
		"jobs", "reports", "contacts", "volunteers", "newsletter",
	}
	for _, domain := range adminDomains {
		expected = append(expected,
			http.MethodGet+" /api/admin/"+domain,
			http.MethodPost+" /api/admin/"+domain,
			http.MethodPut+" /api/admin/"+domain,
			http.MethodDelete+" /api/admin/"+domain,
		)
	}

	require.Equal(t, len(expected), len(got))
	for _, k := range expected {
		_, ok := got[k]
		require.True(t, ok, "missing route %s", k)
	}
}

func TestAdminRoutesRequireSession(t *testing.T) {
	e := newTestEcho(t)

	for _, target := range []string{"/api/admin/blog", "/api/admin/volunteers", "/api/ping", "/api/auth/me"} {
		req := httptest.NewRequest(http.MethodGet, target, nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)
		require.Equal(t, http.StatusUnauthorized, rec.Code, target)
		require.JSONEq(t, `{"error":"unauthorized"}`, rec.Body.String(), target)
	}
}
