package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

type NotificationController struct {
	stors *stor.Stors
}

func NewNotificationController(stors *stor.Stors) *NotificationController {
	return &NotificationController{stors: stors}
}

func (c *NotificationController) ListNotifications(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	notifications, err := c.stors.NotificationStor.ListNotificationsForUser(user.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, notifications)
}

func (c *NotificationController) MarkSeen(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	notification, err := c.stors.NotificationStor.GetNotificationByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	if notification.ReceiverID != user.ID {
		return jsonError(ctx, service.ErrForbidden)
	}

	updated, err := c.stors.NotificationStor.MarkNotificationSeen(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}
