// File: internal/handler/admin/team.go
package admin

import (
	"net/http"

	"hopebridge/internal/api"
	"hopebridge/internal/cache"
	"hopebridge/internal/database"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/store"

	"github.com/labstack/echo/v4"
)

// ListTeamMembersHandler 列出全部團隊成員
// @Summary     列出團隊成員
// @Tags        admin/team
// @Produce     json
// @Success     200 {array}  model.TeamMember
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/team [get]
func ListTeamMembersHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTeam); err != nil {
			return serverError(c, err)
		}
		members, err := store.ListTeamMembers(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, members)
	}
}

// CreateTeamMemberHandler 建立團隊成員
// @Summary     建立團隊成員
// @Tags        admin/team
// @Accept      json
// @Produce     json
// @Param       body body api.CreateTeamMemberRequest true "成員資料"
// @Success     201 {object} model.TeamMember
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/team [post]
func CreateTeamMemberHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTeamMemberRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTeam); err != nil {
			return serverError(c, err)
		}

		member := &model.TeamMember{
			Name:      req.Name,
			Title:     req.Title,
			Bio:       req.Bio,
			Photo:     req.Photo,
			Email:     req.Email,
			LinkedIn:  req.LinkedIn,
			SortOrder: req.SortOrder,
			Status:    req.Status,
		}
		created, err := store.CreateTeamMember(ctx, db, member)
		if err != nil {
			return serverError(c, err)
		}
		invalidate(ctx, cch, schema.DomainTeam)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateTeamMemberHandler 更新指定成員
// @Summary     更新團隊成員
// @Tags        admin/team
// @Accept      json
// @Produce     json
// @Param       id   query string true "成員 ID"
// @Param       body body api.UpdateTeamMemberRequest true "成員資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/team [put]
func UpdateTeamMemberHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateTeamMemberRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTeam); err != nil {
			return serverError(c, err)
		}

		member := &model.TeamMember{
			ID:        id,
			Name:      req.Name,
			Title:     req.Title,
			Bio:       req.Bio,
			Photo:     req.Photo,
			Email:     req.Email,
			LinkedIn:  req.LinkedIn,
			SortOrder: req.SortOrder,
			Status:    req.Status,
		}
		if err := store.UpdateTeamMember(ctx, db, member); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainTeam)
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteTeamMemberHandler 刪除指定成員
// @Summary     刪除團隊成員
// @Tags        admin/team
// @Produce     json
// @Param       id query string true "成員 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/team [delete]
func DeleteTeamMemberHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTeam); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteTeamMember(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainTeam)
		return c.NoContent(http.StatusNoContent)
	}
}
