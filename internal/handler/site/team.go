// File: internal/handler/site/team.go
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

// ListTeamHandler 公開團隊成員（僅 active，依 sort_order）
// @Summary     公開團隊成員
// @Tags        team
// @Produce     json
// @Success     200 {array}  model.TeamMember
// @Failure     500 {object} api.ErrorResponse
// @Router      /team [get]
func ListTeamHandler(db database.DB, cch cache.Cache, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := boot.Ensure(c.Request().Context(), schema.DomainTeam); err != nil {
			return serverError(c, err)
		}
		return listCached(c, cch, schema.DomainTeam, func(ctx context.Context) ([]model.TeamMember, error) {
			return store.ListActiveTeamMembers(ctx, db)
		})
	}
}
