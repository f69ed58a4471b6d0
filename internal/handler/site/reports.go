// File: internal/handler/site/reports.go
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

// ListReportsHandler 公開報告列表（僅 Published）
// @Summary     公開報告列表
// @Tags        reports
// @Produce     json
// @Success     200 {array}  model.Report
// @Failure     500 {object} api.ErrorResponse
// @Router      /reports [get]
func ListReportsHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := boot.Ensure(c.Request().Context(), schema.DomainReports); err != nil {
			return serverError(c, err)
		}
		return listCached(c, cch, schema.DomainReports, func(ctx context.Context) ([]model.Report, error) {
			return store.ListPublishedReports(ctx, db)
		})
	}
}

// DownloadReportHandler 回傳報告檔案連結並累計下載數
// @Summary     報告下載
// @Tags        reports
// @Produce     json
// @Param       id path string true "報告 ID"
// @Success     200 {object} DownloadResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /reports/{id}/download [post]
func DownloadReportHandler(db database.DB, boot *schema.Bootstrapper, buf *stats.Buffer) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainReports); err != nil {
			return serverError(c, err)
		}
		report, err := store.GetReportByID(ctx, db, id)
		if err != nil {
			return c.JSON(http.StatusNotFound, api.ErrorResponse{Message: "not found"})
		}
		buf.Add(stats.ReportDownloads, report.ID)
		return c.JSON(http.StatusOK, DownloadResponse{URL: report.FileURL})
	}
}
