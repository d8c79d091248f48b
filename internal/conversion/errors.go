package conversion

import "errors"

// Domain errors
var (
	// ErrInvalidAmount - amount is negative or not a number
	ErrInvalidAmount = errors.New("conversion: invalid amount")

	// ErrInvalidCurrency - currency code is not a three-letter code
	ErrInvalidCurrency = errors.New("conversion: invalid currency code")

	// ErrCurrencyNotFound - currency code is well-formed but unknown to the provider
	ErrCurrencyNotFound = errors.New("conversion: currency not found")

	// ErrRateUnavailable - upstream rate provider failed and no cached snapshot exists
	ErrRateUnavailable = errors.New("conversion: rates unavailable")
)
