// File: internal/handler/site/blog.go
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

	"github.com/labstack/echo/v4"
)

// ListBlogHandler 公開文章列表（僅 Published）
// @Summary     公開文章列表
// @Tags        blog
// @Produce     json
// @Success     200 {array}  model.BlogPost
// @Failure     500 {object} api.ErrorResponse
// @Router      /blog [get]
func ListBlogHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := boot.Ensure(c.Request().Context(), schema.DomainBlog); err != nil {
			return serverError(c, err)
		}
		return listCached(c, cch, schema.DomainBlog, func(ctx context.Context) ([]model.BlogPost, error) {
			return store.ListPublishedBlogPosts(ctx, db)
		})
	}
}

// GetBlogPostHandler 以 slug 取得公開文章，並累計瀏覽數
// @Summary     取得公開文章
// @Tags        blog
// @Produce     json
// @Param       slug path string true "文章 slug"
// @Success     200 {object} model.BlogPost
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /blog/{slug} [get]
func GetBlogPostHandler(db database.DB, boot *schema.Bootstrapper, buf *stats.Buffer) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainBlog); err != nil {
			return serverError(c, err)
		}
		post, err := store.GetPublishedBlogPostBySlug(ctx, db, c.Param("slug"))
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "not found"})
		}
		buf.Add(stats.BlogViews, post.ID)
		return c.JSON(http.StatusOK, post)
	}
}
