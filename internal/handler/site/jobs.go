// File: internal/handler/site/jobs.go
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

// ListJobsHandler 公開職缺列表（僅 Open）
// @Summary     公開職缺列表
// @Tags        jobs
// @Produce     json
// @Success     200 {array}  model.Job
// @Failure     500 {object} api.ErrorResponse
// @Router      /jobs [get]
func ListJobsHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := boot.Ensure(c.Request().Context(), schema.DomainJobs); err != nil {
			return serverError(c, err)
		}
		return listCached(c, cch, schema.DomainJobs, func(ctx context.Context) ([]model.Job, error) {
			return store.ListOpenJobs(ctx, db)
		})
	}
}
