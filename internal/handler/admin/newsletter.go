// File: internal/handler/admin/newsletter.go
package admin

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

// ListSubscribersHandler 列出電子報訂閱者
// @Summary     列出訂閱者
// @Tags        admin/newsletter
// @Produce     json
// @Success     200 {array}  model.NewsletterSubscriber
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/newsletter [get]
func ListSubscribersHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainNewsletter); err != nil {
			return serverError(c, err)
		}
		subscribers, err := store.ListSubscribers(ctx, db)
		if err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusOK, subscribers)
	}
}

// CreateSubscriberHandler 由管理端直接新增訂閱者。重複的 email 會沿用既有
// 紀錄並恢復為 active。
// @Summary     新增訂閱者
// @Tags        admin/newsletter
// @Accept      json
// @Produce     json
// @Param       body body api.SubscribeRequest true "訂閱資料"
// @Success     201 {object} model.NewsletterSubscriber
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/newsletter [post]
func CreateSubscriberHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
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
		if _, err := store.Subscribe(ctx, db, subscriber); err != nil {
			return serverError(c, err)
		}
		return c.JSON(http.StatusCreated, subscriber)
	}
}

// UpdateSubscriberHandler 更新訂閱狀態
// @Summary     更新訂閱狀態
// @Tags        admin/newsletter
// @Accept      json
// @Produce     json
// @Param       id   query string true "訂閱者 ID"
// @Param       body body api.UpdateSubscriberRequest true "狀態"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/newsletter [put]
func UpdateSubscriberHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}
		var req api.UpdateSubscriberRequest
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
		if err := store.UpdateSubscriberStatus(ctx, db, id, req.Status); err != nil {
			return notFoundOrServerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}

// DeleteSubscriberHandler 刪除訂閱者
// @Summary     刪除訂閱者
// @Tags        admin/newsletter
// @Produce     json
// @Param       id query string true "訂閱者 ID"
// @Success     204 "No Content"
// @Failure     400 {object} api.ErrorResponse
// @Failure     401 {object} api.ErrorResponse
// @Failure     404 {object} api.ErrorResponse
// @Failure     500 {object} api.ErrorResponse
// @Router      /admin/newsletter [delete]
func DeleteSubscriberHandler(db database.DB, boot *schema.Bootstrapper) echo.HandlerFunc {
	return func(c echo.Context) error {
		id, err := parseID(c)
		if err != nil {
			return c.JSON(http.StatusBadRequest, api.ErrorResponse{Message: "invalid id"})
		}

		ctx := c.Request().Context()
		if err := boot.Ensure(ctx, schema.DomainNewsletter); err != nil {
			return serverError(c, err)
		}
		if err := store.DeleteSubscriber(ctx, db, id); err != nil {
			return notFoundOrServerError(c, err)
		}
		return c.NoContent(http.StatusNoContent)
	}
}
