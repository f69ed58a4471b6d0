// File: internal/handler/admin/volunteers.go
package admin

import (
	"net/http"

	"hopebridge/internal/api"
	"hopebridge/internal/database"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/store"

	"github.com/labstack/echo/v4"
)

// ListVolunteersHandler 列出志工申請
// @Summary     列出志工申請
// @Tags        admin/volunteers
// @Produce     json
// @Success     200 {array}  model.Volunteer
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/volunteers [get]
func ListVolunteersHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainVolunteers); err != nil {
			return serverError(c, err)
		}
		volunteers, err := store.ListVolunteers(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, volunteers)
	}
}

// CreateVolunteerHandler 由管理端代為登錄志工申請，例如紙本報名表。
// @Summary     新增志工申請
// @Tags        admin/volunteers
// @Accept      json
// @Produce     json
// @Param       body body api.CreateVolunteerRequest true "申請資料"
// @Success     201 {object} model.Volunteer
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/volunteers [post]
func CreateVolunteerHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateVolunteerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainVolunteers); err != nil {
			return serverError(c, err)
		}

		volunteer := &model.Volunteer{
			Name:     req.Name,
			Email:    req.Email,
			Phone:    req.Phone,
			Interest: req.Interest,
			Message:  req.Message,
		}
		created, err := store.CreateVolunteer(ctx, db, volunteer)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateVolunteerHandler 更新志工申請審核狀態
// @Summary     更新志工申請狀態
// @Tags        admin/volunteers
// @Accept      json
// @Produce     json
// @Param       id   query string true "申請 ID"
// @Param       body body api.UpdateVolunteerRequest true "狀態"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/volunteers [put]
func UpdateVolunteerHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateVolunteerRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainVolunteers); err != nil {
			return serverError(c, err)
		}
		if err := store.UpdateVolunteerStatus(ctx, db, id, req.Status); err != nil {
			return notFoundOrServerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteVolunteerHandler 刪除志工申請
// @Summary     刪除志工申請
// @Tags        admin/volunteers
// @Produce     json
// @Param       id query string true "申請 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/volunteers [delete]
func DeleteVolunteerHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainVolunteers); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteVolunteer(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
