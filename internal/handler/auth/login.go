// File: internal/handler/auth/login.go
package auth

import (
	"net/http"
	"time"

	"hopebridge/internal/api"
	"hopebridge/internal/database"
	"hopebridge/internal/middleware"
	"hopebridge/internal/schema"
	"hopebridge/internal/service"
	"hopebridge/internal/store"

	"github.com/labstack/echo/v4"
)

// newSessionCookie builds the HTTP-only session cookie. maxAge < 0 expires
// the cookie immediately (logout).
func newSessionCookie(token string, maxAge time.Duration, secure bool) *http.Cookie {
	cookie := &http.Cookie{
		Name:     middleware.SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		Secure:   secure,
	}
	if maxAge < 0 {
		cookie.MaxAge = -1
	} else {
		cookie.MaxAge = int(maxAge / time.Second)
	}
	return cookie
}

// LoginHandler 使用 Email/Password 驗證並寫入 session cookie
// @Summary     管理員登入
// @Description 驗證帳號密碼，成功後以 HTTP-only cookie 寫入簽名憑證
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.LoginRequest true "登入資料"
// @Success     200 {object} api.AdminResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/login [post]
func LoginHandler(db database.DB, boot *schema.Bootstrapper, secure bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.LoginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.EnsureCore(ctx); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "service unavailable"})
		}

		admin, err := store.GetAdminUserByEmail(ctx, db, req.Email)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		if err := service.AuthenticateAdmin(*admin, req.Password); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}

		token, err := service.IssueSessionToken(*admin, service.SessionTTL)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to issue token"})
		}
		c.SetCookie(newSessionCookie(token, service.SessionTTL, secure))

		return c.JSON(http.StatusOK, api.AdminResponse{
			ID:        admin.ID,
			Email:     admin.Email,
			Name:      admin.Name,
			Role:      admin.Role,
			CreatedAt: admin.CreatedAt,
		})
	}
}

// LogoutHandler 清除 session cookie
// @Summary     管理員登出
// @Description 使 session cookie 立即失效
// @Tags        auth
// @Produce     json
// @Success     204 "No Content"
// @Router      /auth/logout [post]
func LogoutHandler(secure bool) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.SetCookie(newSessionCookie("", -1, secure))
		return c.NoContent(http.StatusNoContent)
	}
}
