package auth

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hopebridge/internal/database"
	"hopebridge/internal/middleware"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/service"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

// helper to build echo context
func newLoginCtx(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

type errValidator struct{}

func (errValidator) Validate(i any) error { return errors.New("v") }

type okValidator struct{}

func (okValidator) Validate(i any) error { return nil }

type fakeAdminRow struct {
	u   model.AdminUser
	err error
}

func (r fakeAdminRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*dest[0].(*uuid.UUID) = r.u.ID
	*dest[1].(*string) = r.u.Email
	*dest[2].(*string) = r.u.PasswordHash
	*dest[3].(*string) = r.u.Name
	*dest[4].(*string) = r.u.Role
	*dest[5].(*bool) = r.u.IsActive
	*dest[6].(*time.Time) = r.u.CreatedAt
	return nil
}

func okExec(context.Context, string, ...any) (pgconn.CommandTag, error) {
	return pgconn.NewCommandTag("CREATE TABLE"), nil
}

func TestLoginHandler(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")

	// bind error
	e := echo.New()
	ctx, rec := newLoginCtx(e, "{")
	db := &database.FakeDB{}
	h := LoginHandler(db, schema.New(db), false)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// validate error
	e = echo.New()
	e.Validator = errValidator{}
	ctx, rec = newLoginCtx(e, `{"email":"a@b.c","password":"p"}`)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusBadRequest, rec.Code)

	// bootstrap failure
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newLoginCtx(e, `{"email":"a@b.c","password":"p"}`)
	db = &database.FakeDB{ExecFn: func(context.Context, string, ...any) (pgconn.CommandTag, error) {
		return pgconn.CommandTag{}, errors.New("down")
	}}
	h = LoginHandler(db, schema.New(db), false)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusInternalServerError, rec.Code)

	// user not found
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newLoginCtx(e, `{"email":"a@b.c","password":"p"}`)
	db = &database.FakeDB{
		ExecFn: okExec,
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeAdminRow{err: pgx.ErrNoRows}
		},
	}
	h = LoginHandler(db, schema.New(db), false)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)
	require.Contains(t, rec.Body.String(), "invalid credentials")

	// wrong password
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newLoginCtx(e, `{"email":"a@b.c","password":"p"}`)
	badHash, _ := service.HashPassword("other")
	db = &database.FakeDB{
		ExecFn: okExec,
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeAdminRow{u: model.AdminUser{PasswordHash: badHash, IsActive: true}}
		},
	}
	h = LoginHandler(db, schema.New(db), false)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// inactive account
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newLoginCtx(e, `{"email":"a@b.c","password":"p"}`)
	goodHash, _ := service.HashPassword("p")
	db = &database.FakeDB{
		ExecFn: okExec,
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeAdminRow{u: model.AdminUser{PasswordHash: goodHash, IsActive: false}}
		},
	}
	h = LoginHandler(db, schema.New(db), false)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	// success sets the session cookie
	e = echo.New()
	e.Validator = okValidator{}
	ctx, rec = newLoginCtx(e, `{"email":"a@b.c","password":"p"}`)
	admin := model.AdminUser{ID: uuid.New(), Email: "a@b.c", PasswordHash: goodHash, Name: "Admin", Role: "owner", IsActive: true}
	db = &database.FakeDB{
		ExecFn: okExec,
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeAdminRow{u: admin}
		},
	}
	h = LoginHandler(db, schema.New(db), false)
	require.NoError(t, h(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), admin.ID.String())
	require.NotContains(t, rec.Body.String(), "password")

	res := rec.Result()
	var session *http.Cookie
	for _, ck := range res.Cookies() {
		if ck.Name == middleware.SessionCookieName {
			session = ck
		}
	}
	require.NotNil(t, session)
	require.NotEmpty(t, session.Value)
	require.True(t, session.HttpOnly)
	require.Equal(t, "/", session.Path)
	require.Equal(t, http.SameSiteLaxMode, session.SameSite)
	require.False(t, session.Secure)

	claims, err := service.VerifySessionToken(session.Value)
	require.NoError(t, err)
	require.Equal(t, admin.ID, claims.AdminID)
}

func TestLoginHandlerSecureCookie(t *testing.T) {
	t.Setenv("SESSION_SECRET", "s")

	e := echo.New()
	e.Validator = okValidator{}
	ctx, rec := newLoginCtx(e, `{"email":"a@b.c","password":"p"}`)
	hash, _ := service.HashPassword("p")
	admin := model.AdminUser{ID: uuid.New(), Email: "a@b.c", PasswordHash: hash, IsActive: true}
	db := &database.FakeDB{
		ExecFn: okExec,
		QueryRowFn: func(context.Context, string, ...any) pgx.Row {
			return fakeAdminRow{u: admin}
		},
	}
	require.NoError(t, LoginHandler(db, schema.New(db), true)(ctx))
	require.Equal(t, http.StatusOK, rec.Code)
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			require.True(t, ck.Secure)
		}
	}
}

func TestLogoutHandler(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rec := httptest.NewRecorder()
	ctx := e.NewContext(req, rec)

	require.NoError(t, LogoutHandler(false)(ctx))
	require.Equal(t, http.StatusNoContent, rec.Code)

	var session *http.Cookie
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == middleware.SessionCookieName {
			session = ck
		}
	}
	require.NotNil(t, session)
	require.Empty(t, session.Value)
	require.Equal(t, -1, session.MaxAge)
}
