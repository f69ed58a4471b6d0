// File: internal/handler/admin/gallery.go
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

// ListGalleryImagesHandler 列出全部相簿圖片
// @Summary     列出相簿圖片
// @Tags        admin/gallery
// @Produce     json
// @Success     200 {array}  model.GalleryImage
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/gallery [get]
func ListGalleryImagesHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainGallery); err != nil {
			return serverError(c, err)
		}
		images, err := store.ListGalleryImages(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, images)
	}
}

// CreateGalleryImageHandler 建立相簿圖片
// @Summary     建立相簿圖片
// @Tags        admin/gallery
// @Accept      json
// @Produce     json
// @Param       body body api.CreateGalleryImageRequest true "圖片資料"
// @Success     201 {object} model.GalleryImage
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/gallery [post]
func CreateGalleryImageHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateGalleryImageRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainGallery); err != nil {
			return serverError(c, err)
		}

		image := &model.GalleryImage{
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			Category:    req.Category,
			Status:      req.Status,
		}
		created, err := store.CreateGalleryImage(ctx, db, image)
		if err != nil {
			return serverError(c, err)
		}
		invalidate(ctx, cch, schema.DomainGallery)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateGalleryImageHandler 更新指定圖片
// @Summary     更新相簿圖片
// @Tags        admin/gallery
// @Accept      json
// @Produce     json
// @Param       id   query string true "圖片 ID"
// @Param       body body api.UpdateGalleryImageRequest true "圖片資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/gallery [put]
func UpdateGalleryImageHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateGalleryImageRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainGallery); err != nil {
			return serverError(c, err)
		}

		image := &model.GalleryImage{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			ImageURL:    req.ImageURL,
			Category:    req.Category,
			Status:      req.Status,
		}
		if err := store.UpdateGalleryImage(ctx, db, image); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainGallery)
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteGalleryImageHandler 刪除指定圖片
// @Summary     刪除相簿圖片
// @Tags        admin/gallery
// @Produce     json
// @Param       id query string true "圖片 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/gallery [delete]
func DeleteGalleryImageHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainGallery); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteGalleryImage(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainGallery)
		return c.NoContent(http.StatusNoContent)
	}
}
