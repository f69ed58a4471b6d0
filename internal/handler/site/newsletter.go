// File: internal/handler/site/newsletter.go
package site

import (
	"net/http"
	"strings"

	"hopebridge/internal/api"
	"hopebridge/internal/database"
	"hopebridge/internal/model"
	"hopebridge/internal/schema"
	"hopebridge/internal/store"

	"github.com/labstack/echo/v4"
)

// SubscribeHandler 訂閱電子報；重複訂閱為冪等操作
// @Summary     訂閱電子報
// @Tags        newsletter
// @Accept      json
// @Produce     json
// @Param       body body api.SubscribeRequest true "訂閱資料"
// @Success     200 {object} api.SubscribeResponse
// @Success     201 {object} api.SubscribeResponse
// @Failure     400 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /newsletter [post]
func SubscribeHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req api.SubscribeRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid request body"})
		}
		if err := c.Validate(&req); err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: err.Error()})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainNewsletter); err != nil {
			return serverError(c, err)
		}

		subscriber := &model.NewsletterSubscriber{
			Email: strings.ToLower(req.Email),
			Name:  req.Name,
		}
		inserted, err := store.Subscribe(ctx, db, subscriber)
		if err != nil {
			return serverError(c, err)
		}
		if !inserted {
			return c.JSON(http.StatusOK, api.SubscribeResponse{Subscribed: true, Message: "already subscribed"})
		}
		return c.JSON(http.StatusCreated, api.SubscribeResponse{Subscribed: true})
	}
}
