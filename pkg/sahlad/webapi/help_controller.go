package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

type HelpController struct {
	stors *stor.Stors
}

func NewHelpController(stors *stor.Stors) *HelpController {
	return &HelpController{stors: stors}
}

func (c *HelpController) CreateTicket(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	var req struct {
		Problem string `json:"problem"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Problem == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "problem description is required"))
	}

	ticket, err := c.stors.HelpStor.CreateHelpTicket(&smodel.HelpTicket{
		UserID:  user.ID,
		Problem: req.Problem,
	})
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, ticket)
}

func (c *HelpController) ListMyTickets(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	tickets, err := c.stors.HelpStor.ListHelpTicketsForUser(user.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, tickets)
}
