// File: internal/handler/site/contact.go
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

// CreateContactMessageHandler 接收訪客聯絡表單
// @Summary     聯絡表單
// @Tags        contact
// @Accept      json
// @Produce     json
// @Param       body body api.CreateContactMessageRequest true "聯絡資料"
// @Success     201 {object} model.ContactMessage
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /contact [post]
func CreateContactMessageHandler(db database.DB, boot *schema.Bootstrapper, m *mailer.Mailer) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.CreateContactMessageRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainContacts); err != nil {
			return serverError(c, err)
		}

		msg := &model.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		}
		created, err := store.CreateContactMessage(ctx, db, msg)
		if err != nil {
			return serverError(c, err)
		}

		m.Notify("New contact message: "+created.Subject,
			fmt.Sprintf("From: %s <%s>\n\n%s", created.Name, created.Email, created.Message))

		return c.JSON(http.StatusCreated, created)
	}
}
