package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hopebridge/internal/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func restore() {
	verifySessionToken = service.VerifySessionToken
}

func newCtx(e *echo.Echo, cookie *http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, "/admin/gallery", nil)
	if cookie != nil {
		req.AddCookie(cookie)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestRequireAdmin(t *testing.T) {
	e := echo.New()
	okNext := func(c echo.Context) error { return c.NoContent(http.StatusOK) }

	t.Run("missing cookie", func(t *testing.T) {
		t.Cleanup(restore)
		nextCalled := false
		ctx, rec := newCtx(e, nil)
		err := RequireAdmin(func(c echo.Context) error { nextCalled = true; return nil })(ctx)
		require.NoError(t, err)
		require.False(t, nextCalled)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		require.Contains(t, rec.Body.String(), "unauthorized")
	})

	t.Run("empty cookie value", func(t *testing.T) {
		t.Cleanup(restore)
		ctx, rec := newCtx(e, &http.Cookie{Name: SessionCookieName, Value: ""})
		err := RequireAdmin(okNext)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("invalid token", func(t *testing.T) {
		t.Cleanup(restore)
		verifySessionToken = func(string) (*service.SessionClaims, error) {
			return nil, errors.New("bad signature")
		}
		ctx, rec := newCtx(e, &http.Cookie{Name: SessionCookieName, Value: "tampered"})
		err := RequireAdmin(okNext)(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		// same body as the missing-cookie case
		require.Contains(t, rec.Body.String(), "unauthorized")
	})

	t.Run("valid token", func(t *testing.T) {
		t.Cleanup(restore)
		id := uuid.New()
		verifySessionToken = func(string) (*service.SessionClaims, error) {
			return &service.SessionClaims{AdminID: id, Role: "owner"}, nil
		}
		ctx, rec := newCtx(e, &http.Cookie{Name: SessionCookieName, Value: "good"})
		var got *service.SessionClaims
		err := RequireAdmin(func(c echo.Context) error {
			got = c.Get(ContextAdminKey).(*service.SessionClaims)
			return c.NoContent(http.StatusOK)
		})(ctx)
		require.NoError(t, err)
		require.Equal(t, http.StatusOK, rec.Code)
		require.Equal(t, id, got.AdminID)
	})
}
