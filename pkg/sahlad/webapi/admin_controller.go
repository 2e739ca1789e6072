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
)

// AdminController is the staff surface: platform stats, moderation of
// reports and help tickets, and catalog maintenance.
type AdminController struct {
	stors *stor.Stors
}

func NewAdminController(stors *stor.Stors) *AdminController {
	return &AdminController{stors: stors}
}

// RequireStaff guards the admin route group.
func RequireStaff(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		user := apimiddleware.GetUser(c)
		if user == nil || !user.IsStaff {
			return jsonError(c, service.ErrForbidden)
		}
		return next(c)
	}
}

func (c *AdminController) GetStats(ctx echo.Context) error {
	usersByRole, err := c.stors.StatsStor.CountUsersByRole()
	if err != nil {
		return err
	}

	activeRequests, err := c.stors.StatsStor.CountActiveRequests()
	if err != nil {
		return err
	}

	openNegotiations, err := c.stors.NegotiationStor.CountByStatuses(
		[]string{smodel.NegotiationStatusInProgress, smodel.NegotiationStatusAgreed})
	if err != nil {
		return err
	}

	activeProjects, err := c.stors.ProjectStor.CountByNegotiationStatus(false)
	if err != nil {
		return err
	}

	offers, err := c.stors.OfferStor.CountOffers()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, map[string]interface{}{
		"users_by_role":     usersByRole,
		"active_requests":   activeRequests,
		"open_negotiations": openNegotiations,
		"active_projects":   activeProjects,
		"offers":            offers,
	})
}

func (c *AdminController) ListReports(ctx echo.Context) error {
	reports, err := c.stors.ReportStor.ListReports()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, reports)
}

func (c *AdminController) ResolveReport(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	report, err := c.stors.ReportStor.ResolveReport(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, report)
}

func (c *AdminController) ResolveHelpTicket(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	ticket, err := c.stors.HelpStor.ResolveHelpTicket(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, ticket)
}

func (c *AdminController) CreateFAQ(ctx echo.Context) error {
	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Question == "" || req.Answer == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "question and answer are required"))
	}

	faq, err := c.stors.CatalogStor.CreateFAQ(&smodel.FAQ{
		Question: req.Question,
		Answer:   req.Answer,
	})
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, faq)
}

func (c *AdminController) UpdateFAQ(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	faq, err := c.stors.CatalogStor.GetFAQByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	var req struct {
		Question string `json:"question"`
		Answer   string `json:"answer"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	updated, err := c.stors.CatalogStor.UpdateFAQ(faq, req.Question, req.Answer)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *AdminController) DeleteFAQ(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	if err := c.stors.CatalogStor.DeleteFAQ(id); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *AdminController) CreateSkill(ctx echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Name == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "name is required"))
	}

	skill, err := c.stors.CatalogStor.CreateSkill(req.Name)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, skill)
}

func (c *AdminController) CreateCategory(ctx echo.Context) error {
	var req struct {
		Name string `json:"name"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Name == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "name is required"))
	}

	category, err := c.stors.CatalogStor.CreateCategory(req.Name)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, category)
}
