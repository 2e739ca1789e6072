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

type OfferController struct {
	stors *stor.Stors
}

func NewOfferController(stors *stor.Stors) *OfferController {
	return &OfferController{stors: stors}
}

func (c *OfferController) CreateOffer(ctx echo.Context) error {
	user := apimiddleware.GetUser(ctx)

	company, err := c.stors.CompanyStor.GetCompanyByUserID(user.ID)
	if err != nil {
		return jsonError(ctx, errors.Wrap(service.ErrForbidden, "only companies can post offers"))
	}

	var req struct {
		Title        string `json:"title"`
		Type         string `json:"type"`
		Requirements string `json:"requirements"`
		Duration     string `json:"duration"`
		WhatWeOffer  string `json:"what_we_offer"`
		Attachment   string `json:"attachment"`
	}

	if err := ctx.Bind(&req); err != nil {
		return err
	}

	if req.Title == "" {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "title is required"))
	}

	if req.Type != smodel.OfferTypeJob && req.Type != smodel.OfferTypeInternship {
		return jsonError(ctx, errors.Wrap(service.ErrValidation, "type must be job or internship"))
	}

	offer, err := c.stors.OfferStor.CreateOffer(&smodel.Offer{
		CompanyID:    company.ID,
		Title:        req.Title,
		Type:         req.Type,
		Requirements: req.Requirements,
		Duration:     req.Duration,
		WhatWeOffer:  req.WhatWeOffer,
		Attachment:   req.Attachment,
	})
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, offer)
}

func (c *OfferController) ListOffers(ctx echo.Context) error {
	offers, err := c.stors.OfferStor.ListOffers()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, offers)
}

func (c *OfferController) ListOffersForCompany(ctx echo.Context) error {
	companyID, err := strconv.Atoi(ctx.Param("company_id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	offers, err := c.stors.OfferStor.ListOffersForCompany(companyID)
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, offers)
}

func (c *OfferController) GetOffer(ctx echo.Context) error {
	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return echo.ErrBadRequest
	}

	offer, err := c.stors.OfferStor.GetOfferByID(id)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, offer)
}

func (c *OfferController) UpdateOffer(ctx echo.Context) error {
	offer, err := c.ownedOffer(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	var updates stor.OfferUpdate
	if err := ctx.Bind(&updates); err != nil {
		return err
	}

	updated, err := c.stors.OfferStor.UpdateOffer(offer, updates)
	if err != nil {
		return jsonError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, updated)
}

func (c *OfferController) DeleteOffer(ctx echo.Context) error {
	offer, err := c.ownedOffer(ctx)
	if err != nil {
		return jsonError(ctx, err)
	}

	if err := c.stors.OfferStor.DeleteOffer(offer.ID); err != nil {
		return jsonError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

func (c *OfferController) ownedOffer(ctx echo.Context) (*smodel.Offer, error) {
	user := apimiddleware.GetUser(ctx)

	id, err := strconv.Atoi(ctx.Param("id"))
	if err != nil {
		return nil, service.ErrNotFound
	}

	offer, err := c.stors.OfferStor.GetOfferByID(id)
	if err != nil {
		return nil, err
	}

	if user.IsStaff {
		return offer, nil
	}

	if offer.Company == nil || offer.Company.UserID != user.ID {
		return nil, service.ErrForbidden
	}

	return offer, nil
}
