package webapi

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sahlad/webapi/apimiddleware"
	"github.com/sahla-platform/sahla/pkg/sdb/smodel"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

type ProjectController struct {
	projectService *service.ProjectService
	phaseService   *service.PhaseService
}

func NewProjectController(projectService *service.ProjectService, phaseService *service.PhaseService) *ProjectController {
	return &ProjectController{projectService: projectService, phaseService: phaseService}
}

func (c *ProjectController) CreateProject(ctx echo.Context) error {
	var req service.CreateProjectRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	project, err := c.projectService.CreateFromNegotiation(apimiddleware.GetUser(ctx), req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, project)
}

// GetProject serves both numeric ids and slugs from the same route.
func (c *ProjectController) GetProject(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)
	param := ctx.Param("id")

	if id, err := strconv.Atoi(param); err == nil {
		detail, err := c.projectService.GetProject(user, id)
		if err != nil {
			return jsonError(ctx, err)
		}
		return ctx.JSON(http.StatusOK, detail)
	}

	detail, err := c.projectService.GetProjectBySlug(user, param)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, detail)
}

func (c *ProjectController) ListProjects(ctx echo.Context) error {
	projects, err := c.projectService.ListProjectsForUser(apimiddleware.GetUser(ctx))
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, projects)
}

func (c *ProjectController) ListPhases(ctx echo.Context) error {
	projectID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	phases, err := c.phaseService.ListPhases(apimiddleware.GetUser(ctx), projectID)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, phases)
}

func (c *ProjectController) AddPhase(ctx echo.Context) error {
	projectID, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	var req service.AddProjectPhaseRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	phase, err := c.phaseService.AddPhase(apimiddleware.GetUser(ctx), projectID, req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, phase)
}

func (c *ProjectController) UpdatePhase(ctx echo.Context) error {
	phaseID, err := strconv.Atoi(ctx.Param("phase_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	var updates stor.ProjectPhaseUpdate
	if err := ctx.Bind(&updates); err != nil {
		return err
	}

	phase, err := c.phaseService.UpdatePhase(apimiddleware.GetUser(ctx), phaseID, updates)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, phase)
}

func (c *ProjectController) DeletePhase(ctx echo.Context) error {
	phaseID, err := strconv.Atoi(ctx.Param("phase_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	if err := c.phaseService.SoftDeletePhase(apimiddleware.GetUser(ctx), phaseID); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *ProjectController) StartPhase(ctx echo.Context) error {
	return c.transition(ctx, c.phaseService.Start)
}

func (c *ProjectController) ApprovePhase(ctx echo.Context) error {
	return c.transition(ctx, c.phaseService.Approve)
}

func (c *ProjectController) RejectPhase(ctx echo.Context) error {
	return c.transition(ctx, c.phaseService.Reject)
}

func (c *ProjectController) NextPhase(ctx echo.Context) error {
	return c.transition(ctx, c.phaseService.Next)
}

func (c *ProjectController) SubmitPhase(ctx echo.Context) error {
	phaseID, err := strconv.Atoi(ctx.Param("phase_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	var req service.SubmitPhaseRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	phase, err := c.phaseService.Submit(apimiddleware.GetUser(ctx), phaseID, req)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, phase)
}

func (c *ProjectController) ListDeliverables(ctx echo.Context) error {
	phaseID, err := strconv.Atoi(ctx.Param("phase_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	deliverables, err := c.phaseService.ListDeliverables(apimiddleware.GetUser(ctx), phaseID)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, deliverables)
}

type phaseTransitionFN func(user *smodel.User, phaseID int) (*smodel.ProjectPhase, error)

func (c *ProjectController) transition(ctx echo.Context, fn phaseTransitionFN) error {
	phaseID, err := strconv.Atoi(ctx.Param("phase_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	phase, err := fn(apimiddleware.GetUser(ctx), phaseID)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, phase)
}
