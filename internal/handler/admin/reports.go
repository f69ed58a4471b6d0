// File: internal/handler/admin/reports.go
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

// ListReportsHandler 列出全部報告
// @Summary     列出報告
// @Tags        admin/reports
// @Produce     json
// @Success     200 {array}  model.Report
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/reports [get]
func ListReportsHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainReports); err != nil {
			return serverError(c, err)
		}
		reports, err := store.ListReports(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, reports)
	}
}

// CreateReportHandler 建立報告
// @Summary     建立報告
// @Tags        admin/reports
// @Accept      json
// @Produce     json
// @Param       body body api.CreateReportRequest true "報告資料"
// @Success     201 {object} model.Report
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/reports [post]
func CreateReportHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateReportRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainReports); err != nil {
			return serverError(c, err)
		}

		report := &model.Report{
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			FileURL:     req.FileURL,
			Year:        req.Year,
			Status:      req.Status,
		}
		created, err := store.CreateReport(ctx, db, report)
		if err != nil {
			return serverError(c, err)
		}
		invalidate(ctx, cch, schema.DomainReports)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateReportHandler 更新指定報告
// @Summary     更新報告
// @Tags        admin/reports
// @Accept      json
// @Produce     json
// @Param       id   query string true "報告 ID"
// @Param       body body api.UpdateReportRequest true "報告資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/reports [put]
func UpdateReportHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateReportRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainReports); err != nil {
			return serverError(c, err)
		}

		report := &model.Report{
			ID:          id,
			Title:       req.Title,
			Description: req.Description,
			Category:    req.Category,
			FileURL:     req.FileURL,
			Year:        req.Year,
			Status:      req.Status,
		}
		if err := store.UpdateReport(ctx, db, report); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainReports)
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteReportHandler 刪除指定報告
// @Summary     刪除報告
// @Tags        admin/reports
// @Produce     json
// @Param       id query string true "報告 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/reports [delete]
func DeleteReportHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainReports); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteReport(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainReports)
		return c.NoContent(http.StatusNoContent)
	}
}
