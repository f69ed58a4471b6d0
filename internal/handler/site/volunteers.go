// File: internal/handler/site/volunteers.go
package site

import (
	"fmt"
	"net/http"

	"hopebridge/internal/api"
	"hopebridge/internal/database"
	"hopebridge/internal/mailer"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/store"

	"github.com/labstack/echo/v4"
)

// CreateVolunteerHandler 接收志工申請；狀態由資料庫預設為 Pending
// @Summary     志工申請
// @Tags        volunteers
// @Accept      json
// @Produce     json
// @Param       body body api.CreateVolunteerRequest true "申請資料"
// @Success     201 {object} model.Volunteer
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /volunteers [post]
func CreateVolunteerHandler(db database.DB, boot *schema.Bootstrapper, m *mailer.Mailer) echo.HandlerFunc {
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

		m.Notify("New volunteer application: "+created.Name,
			fmt.Sprintf("From: %s <%s>\nInterest: %s\n\n%s", created.Name, created.Email, created.Interest, created.Message))

		return c.JSON(http.StatusCreated, created)
	}
}
