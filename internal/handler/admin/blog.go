// File: internal/handler/admin/blog.go
package admin

import (
	"net/http"

	"hopebridge/internal/api"
	"hopebridge/internal/cache"
	"hopebridge/internal/database"
	"hopebridge/internal/middleware"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/service"
	"hopebridge/internal/store"

	"github.com/labstack/echo/v4"
)

// ListBlogPostsHandler 列出全部文章（含草稿）
// @Summary     列出文章
// @Tags        admin/blog
// @Produce     json
// @Success     200 {array}  model.BlogPost
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/blog [get]
func ListBlogPostsHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainBlog); err != nil {
			return serverError(c, err)
		}
		posts, err := store.ListBlogPosts(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, posts)
	}
}

// CreateBlogPostHandler 建立文章，作者取自 session
// @Summary     建立文章
// @Tags        admin/blog
// @Accept      json
// @Produce     json
// @Param       body body api.CreateBlogPostRequest true "文章資料"
// @Success     201 {object} model.BlogPost
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/blog [post]
func CreateBlogPostHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateBlogPostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainBlog); err != nil {
			return serverError(c, err)
		}

		post := &model.BlogPost{
			Title:      req.Title,
			Slug:       req.Slug,
			Excerpt:    req.Excerpt,
			Content:    req.Content,
			CoverImage: req.CoverImage,
			Category:   req.Category,
			Tags:       req.Tags,
			Featured:   req.Featured,
			Status:     req.Status,
		}
		if claims, ok := c.Get(middleware.ContextAdminKey).(*service.SessionClaims); ok {
			post.AuthorID = &claims.AdminID
		}

		created, err := store.CreateBlogPost(ctx, db, post)
		if err != nil {
			return serverError(c, err)
		}
		invalidate(ctx, cch, schema.DomainBlog)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateBlogPostHandler 更新指定文章
// @Summary     更新文章
// @Tags        admin/blog
// @Accept      json
// @Produce     json
// @Param       id   query string true "文章 ID"
// @Param       body body api.UpdateBlogPostRequest true "文章資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/blog [put]
func UpdateBlogPostHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateBlogPostRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainBlog); err != nil {
			return serverError(c, err)
		}

		post := &model.BlogPost{
			ID:         id,
			Title:      req.Title,
			Slug:       req.Slug,
			Excerpt:    req.Excerpt,
			Content:    req.Content,
			CoverImage: req.CoverImage,
			Category:   req.Category,
			Tags:       req.Tags,
			Featured:   req.Featured,
			Status:     req.Status,
		}
		if err := store.UpdateBlogPost(ctx, db, post); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainBlog)
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteBlogPostHandler 刪除指定文章
// @Summary     刪除文章
// @Tags        admin/blog
// @Produce     json
// @Param       id query string true "文章 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/blog [delete]
func DeleteBlogPostHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainBlog); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteBlogPost(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainBlog)
		return c.NoContent(http.StatusNoContent)
	}
}
