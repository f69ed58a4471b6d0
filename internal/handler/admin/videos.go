// File: internal/handler/admin/videos.go
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

// ListVideosHandler 列出全部影片
// @Summary     列出影片
// @Tags        admin/videos
// @Produce     json
// @Success     200 {array}  model.Video
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/videos [get]
func ListVideosHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainVideos); err != nil {
			return serverError(c, err)
		}
		videos, err := store.ListVideos(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, videos)
	}
}

// CreateVideoHandler 建立影片
// @Summary     建立影片
// @Tags        admin/videos
// @Accept      json
// @Produce     json
// @Param       body body api.CreateVideoRequest true "影片資料"
// @Success     201 {object} model.Video
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/videos [post]
func CreateVideoHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateVideoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainVideos); err != nil {
			return serverError(c, err)
		}

		video := &model.Video{
			Title:       req.Title,
			Description: req.Description,
			URL:         req.URL,
			Thumbnail:   req.Thumbnail,
			Duration:    req.Duration,
			Featured:    req.Featured,
			Status:      req.Status,
		}
		created, err := store.CreateVideo(ctx, db, video)
		if err != nil {
			return serverError(c, err)
		}
		invalidate(ctx, cch, schema.DomainVideos)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateVideoHandler 更新指定影片
// @Summary     更新影片
// @Tags        admin/videos
// @Accept      json
// @Produce     json
// @Param       id   query string true "影片 ID"
// @Param       body body api.UpdateVideoRequest true "影片資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/videos [put]
func UpdateVideoHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateVideoRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainVideos); err != nil {
			return serverError(c, err)
		}

		video := &model.Video{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			URL:         req.URL,
			Thumbnail:   req.Thumbnail,
			Duration:    req.Duration,
			Featured:    req.Featured,
			Status:      req.Status,
		}
		if err := store.UpdateVideo(ctx, db, video); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainVideos)
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteVideoHandler 刪除指定影片
// @Summary     刪除影片
// @Tags        admin/videos
// @Produce     json
// @Param       id query string true "影片 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/videos [delete]
func DeleteVideoHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainVideos); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteVideo(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainVideos)
		return c.NoContent(http.StatusNoContent)
	}
}
