// File: internal/handler/site/tenders.go
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

// DownloadResponse 下載連結回應
// swagger:model DownloadResponse
type DownloadResponse struct {
	URL string `json:"url" example:"https://cdn.example.org/doc.pdf"`
}

// ListTendersHandler 公開標案列表（僅 Open）
// @Summary     公開標案列表
// @Tags        tenders
// @Produce     json
// @Success     200 {array}  model.Tender
// @Failure     500 {object} api.ErrorResponse
// @Router      /tenders [get]
func ListTendersHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := boot.Ensure(c.Request().Context(), schema.DomainTenders); err != nil {
			return serverError(c, err)
		}
		return listCached(c, cch, schema.DomainTenders, func(ctx context.Context) ([]model.Tender, error) {
			return store.ListOpenTenders(ctx, db)
		})
	}
}

// DownloadTenderHandler 回傳標案文件連結並累計下載數
// @Summary     標案文件下載
// @Tags        tenders
// @Produce     json
// @Param       id path string true "標案 ID"
// @Success     200 {object} DownloadResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /tenders/{id}/download [post]
func DownloadTenderHandler(db database.DB, boot *schema.Bootstrapper, buf *stats.Buffer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTenders); err != nil {
			return serverError(c, err)
		}
		tender, err := store.GetTenderByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "not found"})
		}
		buf.Add(stats.TenderDownloads, tender.ID)
		return c.JSON(http.StatusOK, DownloadResponse{URL: tender.DocumentURL})
	}
}
