// File: internal/handler/admin/contacts.go
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

// ListContactMessagesHandler 列出聯絡訊息
// @Summary     列出聯絡訊息
// @Tags        admin/contacts
// @Produce     json
// @Success     200 {array}  model.ContactMessage
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/contacts [get]
func ListContactMessagesHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainContacts); err != nil {
			return serverError(c, err)
		}
		messages, err := store.ListContactMessages(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, messages)
	}
}

// CreateContactMessageHandler 由管理端代為登錄聯絡訊息，例如電話轉述的案件。
// @Summary     新增聯絡訊息
// @Tags        admin/contacts
// @Accept      json
// @Produce     json
// @Param       body body api.CreateContactMessageRequest true "訊息內容"
// @Success     201 {object} model.ContactMessage
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/contacts [post]
func CreateContactMessageHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
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

		message := &model.ContactMessage{
			Name:    req.Name,
			Email:   req.Email,
			Phone:   req.Phone,
			Subject: req.Subject,
			Message: req.Message,
		}
		created, err := store.CreateContactMessage(ctx, db, message)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusCreated, created)
	}
}

// UpdateContactMessageHandler 更新聯絡訊息處理狀態
// @Summary     更新聯絡訊息狀態
// @Tags        admin/contacts
// @Accept      json
// @Produce     json
// @Param       id   query string true "訊息 ID"
// @Param       body body api.UpdateContactMessageRequest true "狀態"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/contacts [put]
func UpdateContactMessageHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateContactMessageRequest
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
		if err := store.UpdateContactMessageStatus(ctx, db, id, req.Status); err != nil {
			return notFoundOrServerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteContactMessageHandler 刪除聯絡訊息
// @Summary     刪除聯絡訊息
// @Tags        admin/contacts
// @Produce     json
// @Param       id query string true "訊息 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/contacts [delete]
func DeleteContactMessageHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainContacts); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteContactMessage(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
