package http

import (
	"errors"

	"github.com/seolargo/skivori-case/internal/game"
	pkgErrors "github.com/seolargo/skivori-case/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errSearchTooLong = pkgErrors.NewHTTPError(
		400, "Search query too long (max 200 characters)",
	)
	errListFailed = pkgErrors.NewHTTPError(
		500, "Failed to list games",
	)
	errRefreshFailed = pkgErrors.NewHTTPError(
		500, "Failed to refresh catalog cache",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, game.ErrSearchTooLong):
		return errSearchTooLong
	case errors.Is(err, game.ErrListFailed):
		return errListFailed
	case errors.Is(err, game.ErrRefreshFailed):
		return errRefreshFailed
	default:
		panic(err)
	}
}
