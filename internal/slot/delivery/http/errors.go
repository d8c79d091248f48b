package http

import (
	"errors"

	"github.com/seolargo/skivori-case/internal/slot"
	pkgErrors "github.com/seolargo/skivori-case/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(
		400, "Invalid request body",
	)
	errSessionRequired = pkgErrors.NewHTTPError(
		400, "session_id is required",
	)
	errInsufficientBalance = pkgErrors.NewHTTPError(
		400, "Insufficient balance, please reset",
	)
	errSessionNotFound = pkgErrors.NewHTTPError(
		404, "Session not found",
	)
	errSpinFailed = pkgErrors.NewHTTPError(
		500, "Spin failed",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, slot.ErrInsufficientBalance):
		return errInsufficientBalance
	case errors.Is(err, slot.ErrSessionNotFound):
		return errSessionNotFound
	case errors.Is(err, slot.ErrSpinFailed):
		return errSpinFailed
	default:
		panic(err)
	}
}
