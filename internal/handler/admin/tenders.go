// File: internal/handler/admin/tenders.go
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

// ListTendersHandler 列出全部標案
// @Summary     列出標案
// @Tags        admin/tenders
// @Produce     json
// @Success     200 {array}  model.Tender
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/tenders [get]
func ListTendersHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTenders); err != nil {
			return serverError(c, err)
		}
		tenders, err := store.ListTenders(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, tenders)
	}
}

// CreateTenderHandler 建立標案
// @Summary     建立標案
// @Tags        admin/tenders
// @Accept      json
// @Produce     json
// @Param       body body api.CreateTenderRequest true "標案資料"
// @Success     201 {object} model.Tender
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/tenders [post]
func CreateTenderHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateTenderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTenders); err != nil {
			return serverError(c, err)
		}

		tender := &model.Tender{
			Title:       req.Title,
			Reference:   req.Reference,
			Description: req.Description,
			Category:    req.Category,
			DocumentURL: req.DocumentURL,
			Deadline:    req.Deadline,
			Status:      req.Status,
		}
		created, err := store.CreateTender(ctx, db, tender)
		if err != nil {
			return serverError(c, err)
		}
		invalidate(ctx, cch, schema.DomainTenders)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateTenderHandler 更新指定標案
// @Summary     更新標案
// @Tags        admin/tenders
// @Accept      json
// @Produce     json
// @Param       id   query string true "標案 ID"
// @Param       body body api.UpdateTenderRequest true "標案資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/tenders [put]
func UpdateTenderHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateTenderRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTenders); err != nil {
			return serverError(c, err)
		}

		tender := &model.Tender{
			ID:          id,
			Title:       req.Title,
			Reference:   req.Reference,
			Description: req.Description,
			Category:    req.Category,
			DocumentURL: req.DocumentURL,
			Deadline:    req.Deadline,
			Status:      req.Status,
		}
		if err := store.UpdateTender(ctx, db, tender); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainTenders)
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteTenderHandler 刪除指定標案
// @Summary     刪除標案
// @Tags        admin/tenders
// @Produce     json
// @Param       id query string true "標案 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/tenders [delete]
func DeleteTenderHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainTenders); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteTender(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainTenders)
		return c.NoContent(http.StatusNoContent)
	}
}
