package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

// CatalogController serves the public reference lists: FAQs, skills and
// categories. Mutation lives on the admin surface.
type CatalogController struct {
	stors *stor.Stors
}

func NewCatalogController(stors *stor.Stors) *CatalogController {
	return &CatalogController{stors: stors}
}

func (c *CatalogController) ListFAQs(ctx echo.Context) error {
	faqs, err := c.stors.CatalogStor.ListFAQs()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, faqs)
}

func (c *CatalogController) ListSkills(ctx echo.Context) error {
	skills, err := c.stors.CatalogStor.ListSkills()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, skills)
}

func (c *CatalogController) ListCategories(ctx echo.Context) error {
	categories, err := c.stors.CatalogStor.ListCategories()
	if err != nil {
		return err
	}

	return ctx.JSON(http.StatusOK, categories)
}
