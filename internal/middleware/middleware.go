package middleware

import (
	"net/http"

	"hopebridge/internal/api"
	"hopebridge/internal/service"

	"github.com/labstack/echo/v4"
)

// SessionCookieName 是承載管理員簽名憑證的 HTTP-only cookie 名稱。
const SessionCookieName = "hb_session"

const ContextAdminKey = "admin"

// 測試可覆寫此變數。
var verifySessionToken = service.VerifySessionToken

// RequireAdmin gates a route on a valid session cookie. Missing cookie,
// bad signature and expiry all produce the same 401 body so the response
// never reveals which check failed.
func RequireAdmin(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		claims, err := verifySessionToken(cookie.Value)
		if err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		c.Set(ContextAdminKey, claims)
		return next(c)
	}
}
