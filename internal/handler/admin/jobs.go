// File: internal/handler/admin/jobs.go
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

// ListJobsHandler 列出全部職缺
// @Summary     列出職缺
// @Tags        admin/jobs
// @Produce     json
// @Success     200 {array}  model.Job
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/jobs [get]
func ListJobsHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainJobs); err != nil {
			return serverError(c, err)
		}
		jobs, err := store.ListJobs(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, jobs)
	}
}

// CreateJobHandler 建立職缺
// @Summary     建立職缺
// @Tags        admin/jobs
// @Accept      json
// @Produce     json
// @Param       body body api.CreateJobRequest true "職缺資料"
// @Success     201 {object} model.Job
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/jobs [post]
func CreateJobHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateJobRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainJobs); err != nil {
			return serverError(c, err)
		}

		job := &model.Job{
			Title:        req.Title,
			Department:   req.Department,
			Location:     req.Location,
			Type:         req.Type,
			Description:  req.Description,
			Requirements: req.Requirements,
			Deadline:     req.Deadline,
			Status:       req.Status,
		}
		created, err := store.CreateJob(ctx, db, job)
		if err != nil {
			return serverError(c, err)
		}
		invalidate(ctx, cch, schema.DomainJobs)
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateJobHandler 更新指定職缺
// @Summary     更新職缺
// @Tags        admin/jobs
// @Accept      json
// @Produce     json
// @Param       id   query string true "職缺 ID"
// @Param       body body api.UpdateJobRequest true "職缺資料"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/jobs [put]
func UpdateJobHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateJobRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainJobs); err != nil {
			return serverError(c, err)
		}

		job := &model.Job{
			ID:           id,
			Title:        req.Title,
			Department:   req.Department,
			Location:     req.Location,
			Type:         req.Type,
			Description:  req.Description,
			Requirements: req.Requirements,
			Deadline:     req.Deadline,
			Status:       req.Status,
		}
		if err := store.UpdateJob(ctx, db, job); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainJobs)
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteJobHandler 刪除指定職缺
// @Summary     刪除職缺
// @Tags        admin/jobs
// @Produce     json
// @Param       id query string true "職缺 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/jobs [delete]
func DeleteJobHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainJobs); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteJob(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		invalidate(ctx, cch, schema.DomainJobs)
		return c.NoContent(http.StatusNoContent)
	}
}
