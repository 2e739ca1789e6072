package webapi

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sahlad/service"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

// jsonError maps service errors onto {"detail": "..."} bodies. Anything
// outside the taxonomy bubbles up to echo as a 500.
func jsonError(ctx echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound), errors.Is(err, stor.ErrNotFound):
		return detail(ctx, http.StatusNotFound, err)
	case errors.Is(err, service.ErrForbidden):
		return detail(ctx, http.StatusForbidden, err)
	case errors.Is(err, service.ErrValidation), errors.Is(err, service.ErrConflict):
		return detail(ctx, http.StatusBadRequest, err)
	default:
		return err
	}
}

func detail(ctx echo.Context, status int, err error) error {
	return ctx.JSON(status, map[string]string{"detail": err.Error()})
}
