// File: internal/handler/site/stories.go
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

// ListStoriesHandler 公開故事列表（僅 Published）
// @Summary     公開故事列表
// @Tags        stories
// @Produce     json
// @Success     200 {array}  model.Story
// @Failure     500 {object} api.ErrorResponse
// @Router      /stories [get]
func ListStoriesHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := boot.Ensure(c.Request().Context(), schema.DomainStories); err != nil {
			return serverError(c, err)
		}
		return listCached(c, cch, schema.DomainStories, func(ctx context.Context) ([]model.Story, error) {
			return store.ListPublishedStories(ctx, db)
		})
	}
}

// GetStoryHandler 以 slug 取得公開故事，並累計瀏覽數
// @Summary     取得公開故事
// @Tags        stories
// @Produce     json
// @Param       slug path string true "故事 slug"
// @Success     200 {object} model.Story
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /stories/{slug} [get]
func GetStoryHandler(db database.DB, boot *schema.Bootstrapper, buf *stats.Buffer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainStories); err != nil {
			return serverError(c, err)
		}
		story, err := store.GetPublishedStoryBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "not found"})
		}
		buf.Add(stats.StoryViews, story.ID)
		return c.JSON(http.StatusOK, story)
	}
}

// LikeStoryHandler 按讚；計數批次寫回資料庫
// @Summary     故事按讚
// @Tags        stories
// @Produce     json
// @Param       id path string true "故事 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Router      /stories/{id}/like [post]
func LikeStoryHandler(buf *stats.Buffer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		buf.Add(stats.StoryLikes, id)
		return c.NoContent(http.StatusNoContent)
	}
}
