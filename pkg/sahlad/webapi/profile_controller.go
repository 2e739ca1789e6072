package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

type ProfileController struct {
	stors          *stor.Stors
	accountService *service.AccountService
}

func NewProfileController(stors *stor.Stors, accountService *service.AccountService) *ProfileController {
	return &ProfileController{stors: stors, accountService: accountService}
}

func (c *ProfileController) GetFreelancer(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	freelancer, err := c.stors.FreelancerStor.GetFreelancerByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, freelancer)
}

func (c *ProfileController) UpdateFreelancer(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	freelancer, err := c.stors.FreelancerStor.GetFreelancerByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	if freelancer.UserID != user.ID && !user.IsStaff {
		return jsonError(ctx, service.ErrForbidden)
	}

	var updates stor.FreelancerUpdate
	if err := ctx.Bind(&updates); err != nil {
		return err
	}

	updated, err := c.stors.FreelancerStor.UpdateFreelancer(freelancer, updates)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *ProfileController) GetClient(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	client, err := c.stors.ClientStor.GetClientByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, client)
}

func (c *ProfileController) UpdateClient(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	client, err := c.stors.ClientStor.GetClientByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	if client.UserID != user.ID && !user.IsStaff {
		return jsonError(ctx, service.ErrForbidden)
	}

	var updates stor.ClientUpdate
	if err := ctx.Bind(&updates); err != nil {
		return err
	}

	updated, err := c.stors.ClientStor.UpdateClient(client, updates)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *ProfileController) GetCompany(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	company, err := c.stors.CompanyStor.GetCompanyByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, company)
}

func (c *ProfileController) UpdateCompany(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	company, err := c.stors.CompanyStor.GetCompanyByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	if company.UserID != user.ID && !user.IsStaff {
		return jsonError(ctx, service.ErrForbidden)
	}

	var updates stor.CompanyUpdate
	if err := ctx.Bind(&updates); err != nil {
		return err
	}

	updated, err := c.stors.CompanyStor.UpdateCompany(company, updates)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *ProfileController) UpdatePassword(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	var req struct {
		CurrentPassword string `json:"current_password"`
		NewPassword     string `json:"new_password"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if err := c.accountService.UpdatePassword(user, req.CurrentPassword, req.NewPassword); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, map[string]string{"detail": "password updated"})
}

func (c *ProfileController) DeactivateUser(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	if err := c.accountService.Deactivate(user, id); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}
