// File: internal/handler/admin/stories.go
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

// ListStoriesHandler 列出全部故事（含草稿）
// @Summary     列出故事
// @Tags        admin/stories
// @Produce     json
// @Success     200 {array}  model.Story
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/stories [get]
func ListStoriesHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainStories); err != nil {
			return serverError(c, err)
		}
		stories, err := store.ListStories(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, stories)
	}
}

// CreateStoryHandler 建立故事
// @Summary     建立故事
// @Tags        admin/stories
// @Accept      json
// @Produce     json
// @Param       body body api.CreateStoryRequest true "故事資料"
// @Success     201 {object} model.Story
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/stories [post]
func CreateStoryHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateStoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainStories); err != nil {
			return serverError(c, err)
		}

		story := &model.Story{
			Title:    req.Title,
			Slug:     req.Slug,
			Summary:  req.Summary,
			Content:  req.Content,
			Image:    req.Image,
			Location: req.Location,
			Featured: req.Featured,
			Status:   req.Status,
		}
		created, err := store.CreateStory(ctx, db, story)
		if err != nil {
			return serverError(c, err)
		}
		invalidate(ctx, cch, schema.DomainStories)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateStoryHandler 更新指定故事
// @Summary     更新故事
// @Tags        admin/stories
// @Accept      json
// @Produce     json
// @Param       id   query string true "故事 ID"
// @Param       body body api.UpdateStoryRequest true "故事資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/stories [put]
func UpdateStoryHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateStoryRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainStories); err != nil {
			return serverError(c, err)
		}

		story := &model.Story{
			ID:       id,
			Title:    req.Title,
			Slug:     req.Slug,
			Summary:  req.Summary,
			Content:  req.Content,
			Image:    req.Image,
			Location: req.Location,
			Featured: req.Featured,
			Status:   req.Status,
		}
		if err := store.UpdateStory(ctx, db, story); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainStories)
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteStoryHandler 刪除指定故事
// @Summary     刪除故事
// @Tags        admin/stories
// @Produce     json
// @Param       id query string true "故事 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/stories [delete]
func DeleteStoryHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainStories); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteStory(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainStories)
		return c.NoContent(http.StatusNoContent)
	}
}
