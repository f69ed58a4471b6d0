// File: internal/handler/site/videos.go
package site

import (
	"context"
	"net/http"

	"hopebridge/internal/api"
	"hopebridge/internal/cache"
	"hopebridge/internal/database"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/stats"
	"hopebridge/internal/store"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// ListVideosHandler 公開影片列表（僅 Published）
// @Summary     公開影片列表
// @Tags        videos
// @Produce     json
// @Success     200 {array}  model.Video
// @Failure     500 {object} api.ErrorResponse
// @Router      /videos [get]
func ListVideosHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := boot.Ensure(c.Request().Context(), schema.DomainVideos); err != nil {
			return serverError(c, err)
		}
		return listCached(c, cch, schema.DomainVideos, func(ctx context.Context) ([]model.Video, error) {
			return store.ListPublishedVideos(ctx, db)
		})
	}
}

// ViewVideoHandler 累計影片播放數
// @Summary     影片播放計數
// @Tags        videos
// @Produce     json
// @Param       id path string true "影片 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Router      /videos/{id}/view [post]
func ViewVideoHandler(buf *stats.Buffer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		buf.Add(stats.VideoViews, id)
		return c.NoContent(http.StatusNoContent)
	}
}
