package service

import (
	"github.com/pkg/errors"
	"github.com/sahla-platform/sahla/pkg/sdb/stor"
)

// Sentinel errors for the service layer. Controllers map these onto HTTP
// status codes; everything else is a 500.
var (
	ErrNotFound   = errors.New("not found")
	ErrForbidden  = errors.New("forbidden")
	ErrValidation = errors.New("validation failed")
	ErrConflict   = errors.New("conflict")
)

// translateStorErr maps persistence sentinels into the service taxonomy. A
// missing row is NotFound, a refused lifecycle write is Conflict.
func translateStorErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, stor.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, stor.ErrInvalidState):
		return errors.Wrap(ErrConflict, err.Error())
	default:
		return err
	}
}
