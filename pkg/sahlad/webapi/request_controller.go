package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
	"github.com/shopspring/decimal"
)

type RequestController struct {
	stors *stor.Stors
}

func NewRequestController(stors *stor.Stors) *RequestController {
	return &RequestController{stors: stors}
}

func (c *RequestController) CreateRequest(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	client, err := c.stors.ClientStor.GetClientByUserID(user.ID)
	if err != nil {
		return jsonError(ctx, errors.Wrap(service.ErrForbidden, "only clients can post requests"))
	}

	var req struct {
		Title       string          `json:"title"`
		Category    string          `json:"category"`
		Attachments string          `json:"attachments"`
		BudgetMin   decimal.Decimal `json:"budget_min"`
		BudgetMax   decimal.Decimal `json:"budget_max"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Title == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "title is required"))
	}

	request, err := c.stors.RequestStor.CreateRequest(&smodel.Request{
		ClientID:    client.ID,
		Title:       req.Title,
		Category:    req.Category,
		Attachments: req.Attachments,
		BudgetMin:   req.BudgetMin,
		BudgetMax:   req.BudgetMax,
	})
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, request)
}

func (c *RequestController) ListRequests(ctx echo.Context) error {
	requests, err := c.stors.RequestStor.ListRequests()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, requests)
}

func (c *RequestController) ListRequestsForClient(ctx echo.Context) error {
	clientID, err := strconv.Atoi(ctx.Param("client_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	requests, err := c.stors.RequestStor.ListRequestsForClient(clientID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, requests)
}

func (c *RequestController) GetRequest(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	request, err := c.stors.RequestStor.GetRequestByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, request)
}

func (c *RequestController) UpdateRequest(ctx echo.Context) error {
	request, err := c.ownedRequest(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	var updates stor.RequestUpdate
	if err := ctx.Bind(&updates); err != nil {
		return err
	}

	updated, err := c.stors.RequestStor.UpdateRequest(request, updates)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

// CancelRequest is the delete endpoint; the request moves to cancelled and
// the row stays.
func (c *RequestController) CancelRequest(ctx echo.Context) error {
	request, err := c.ownedRequest(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := c.stors.RequestStor.CancelRequest(request.ID); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *RequestController) ownedRequest(ctx echo.Context) (*smodel.Request, error) {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, service.ErrNotFound
	}

	request, err := c.stors.RequestStor.GetRequestByID(id)
	if err != nil {
		return nil, err
	}

	if user.IsStaff {
		return request, nil
	}

	if request.Client == nil || request.Client.UserID != user.ID {
		return nil, service.ErrForbidden
	}

	return request, nil
}
