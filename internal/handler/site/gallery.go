// File: internal/handler/site/gallery.go
package site

import (
	"context"

	"hopebridge/internal/cache"
	"hopebridge/internal/database"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/store"

	"github.com/labstack/echo/v4"
)

// ListGalleryHandler 公開相簿（僅 active）
// @Summary     公開相簿
// @Tags        gallery
// @Produce     json
// @Success     200 {array}  model.GalleryImage
// @Failure     500 {object} api.ErrorResponse
// @Router      /gallery [get]
func ListGalleryHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := boot.Ensure(c.Request().Context(), schema.DomainGallery); err != nil {
			return serverError(c, err)
		}
		return listCached(c, cch, schema.DomainGallery, func(ctx context.Context) ([]model.GalleryImage, error) {
			return store.ListActiveGalleryImages(ctx, db)
		})
	}
}
