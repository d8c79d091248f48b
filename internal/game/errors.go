package game

import "errors"

// Domain errors
var (
	// ErrSearchTooLong - free-text search exceeds MaxSearchLength
	ErrSearchTooLong = errors.New("game: search query too long")

	// ErrListFailed - catalog repository query failed
	ErrListFailed = errors.New("game: failed to list games")

	// ErrRefreshFailed - cached catalog pages could not be dropped
	ErrRefreshFailed = errors.New("game: failed to refresh catalog cache")
)
