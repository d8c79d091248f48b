package http

import (
	"errors"

	"github.com/seolargo/skivori-case/internal/conversion"
	pkgErrors "github.com/seolargo/skivori-case/pkg/errors"
)

var (
	errInvalidQuery = pkgErrors.NewHTTPError(
		400, "Invalid query parameters",
	)
	errInvalidAmount = pkgErrors.NewHTTPError(
		400, "Amount must be a non-negative number",
	)
	errInvalidCurrency = pkgErrors.NewHTTPError(
		400, "Currency code must be three letters",
	)
	errCurrencyNotFound = pkgErrors.NewHTTPError(
		404, "Currency not found",
	)
	errRateUnavailable = pkgErrors.NewHTTPError(
		502, "Exchange rates unavailable",
	)
)

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, conversion.ErrInvalidAmount):
		return errInvalidAmount
	case errors.Is(err, conversion.ErrInvalidCurrency):
		return errInvalidCurrency
	case errors.Is(err, conversion.ErrCurrencyNotFound):
		return errCurrencyNotFound
	case errors.Is(err, conversion.ErrRateUnavailable):
		return errRateUnavailable
	default:
		panic(err)
	}
}
