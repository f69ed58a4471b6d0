// File: internal/handler/auth/me.go
package auth

import (
	"net/http"

	"hopebridge/internal/api"
	"hopebridge/internal/database"
	"hopebridge/internal/middleware"
	"hopebridge/internal/service"
	"hopebridge/internal/store"

	"github.com/labstack/echo/v4"
)

// MeHandler 取得目前登入的管理員
// @Summary     取得目前管理員
// @Description 依 session cookie 中的身分回傳管理員資料
// @Tags        auth
// @Produce     json
// @Success     200 {object} api.AdminResponse
// @Failure     401 {object} api.ErrorResponse
// @Router      /auth/me [get]
func MeHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextAdminKey).(*service.SessionClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		admin, err := store.GetAdminUserByID(c.Request().Context(), db, claims.AdminID)
		if err != nil || !admin.IsActive {
			// 已刪除或停用的管理員即使持有有效 token 也視同未登入
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		return c.JSON(http.StatusOK, api.AdminResponse{
			ID:        admin.ID,
			Email:     admin.Email,
			Name:      admin.Name,
			Role:      admin.Role,
			CreatedAt: admin.CreatedAt,
		})
	}
}

// UpdateMyPasswordHandler 更新目前管理員密碼
// @Summary     更新密碼
// @Description 驗證舊密碼後寫入新密碼雜湊
// @Tags        auth
// @Accept      json
// @Produce     json
// @Param       body body api.UpdateMyPasswordRequest true "密碼資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /auth/me/password [put]
func UpdateMyPasswordHandler(db database.DB) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, ok := c.Get(middleware.ContextAdminKey).(*service.SessionClaims)
		if !ok {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		var req api.UpdateMyPasswordRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		admin, err := store.GetAdminUserByID(ctx, db, claims.AdminID)
		if err != nil || !admin.IsActive {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "unauthorized"})
		}
		if err := service.ComparePassword(admin.PasswordHash, req.OldPassword); err != nil {
			return c.JSON(http.StatusUnauthorized, api.ErrorResponse{Message: "invalid credentials"})
		}
		hash, err := service.HashPassword(req.NewPassword)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to hash password"})
		}
		if err := store.UpdateAdminUserPassword(ctx, db, admin.ID, hash); err != nil {
			return c.JSON(http.StatusInternalServerError, api.ErrorResponse{Message: "failed to update password"})
		}
		return c.NoContent(http.StatusNoContent)
	}
}
