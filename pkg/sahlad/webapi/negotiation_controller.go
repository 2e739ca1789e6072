package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

type NegotiationController struct {
	negotiationService *service.NegotiationService
}

func NewNegotiationController(negotiationService *service.NegotiationService) *NegotiationController {
	return &NegotiationController{negotiationService: negotiationService}
}

func (c *NegotiationController) CreateDirectHire(ctx echo.Context) error {
	var req service.CreateDirectHireRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	negotiation, err := c.negotiationService.CreateDirectHire(apimiddleware.GetUser(ctx), req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, negotiation)
}

func (c *NegotiationController) CreateFromRequest(ctx echo.Context) error {
	var req service.CreateFromRequestRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	negotiation, err := c.negotiationService.CreateFromRequest(apimiddleware.GetUser(ctx), req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, negotiation)
}

func (c *NegotiationController) GetNegotiation(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	detail, err := c.negotiationService.GetNegotiation(apimiddleware.GetUser(ctx), id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

func (c *NegotiationController) Agree(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	negotiation, err := c.negotiationService.Agree(apimiddleware.GetUser(ctx), id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, negotiation)
}

func (c *NegotiationController) Decline(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	var req struct {
		Reason string `json:"reason"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	negotiation, err := c.negotiationService.Decline(apimiddleware.GetUser(ctx), id, req.Reason)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, negotiation)
}

func (c *NegotiationController) AddPhase(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	var req service.PhaseRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	phase, err := c.negotiationService.AddPhase(apimiddleware.GetUser(ctx), id, req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, phase)
}

func (c *NegotiationController) UpdatePhase(ctx echo.Context) error {
	phaseID, err := strconv.Atoi(ctx.Param("phase_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	var updates stor.NegotiationPhaseUpdate
	if err := ctx.Bind(&updates); err != nil {
		return err
	}

	phase, err := c.negotiationService.UpdatePhase(apimiddleware.GetUser(ctx), phaseID, updates)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, phase)
}

func (c *NegotiationController) DeletePhase(ctx echo.Context) error {
	phaseID, err := strconv.Atoi(ctx.Param("phase_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	if err := c.negotiationService.DeletePhase(apimiddleware.GetUser(ctx), phaseID); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
