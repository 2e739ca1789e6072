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

type ReportController struct {
	stors *stor.Stors
}

func NewReportController(stors *stor.Stors) *ReportController {
	return &ReportController{stors: stors}
}

var reportTypes = map[string]bool{
	smodel.ReportTypeClient:     true,
	smodel.ReportTypeFreelancer: true,
	smodel.ReportTypePost:       true,
	smodel.ReportTypeComment:    true,
	smodel.ReportTypeRequest:    true,
}

func (c *ReportController) CreateReport(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	var req struct {
		Type     string `json:"type"`
		TargetID int    `json:"target_id"`
		Text     string `json:"text"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if !reportTypes[req.Type] {
		return jsonError(ctx, errors.Wrapf(service.ErrValidation, "unknown report type %q", req.Type))
	}

	report, err := c.stors.ReportStor.CreateReport(&smodel.Report{
		ReporterID: user.ID,
		Type:       req.Type,
		TargetID:   req.TargetID,
		Text:       req.Text,
	})
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, report)
}

func (c *ReportController) ListMyReports(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	reports, err := c.stors.ReportStor.ListReportsForUser(user.ID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, reports)
}
