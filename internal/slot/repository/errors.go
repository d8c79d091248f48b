package repository

import "errors"

var (
	// ErrBalanceNotFound - no balance key exists for the session
	ErrBalanceNotFound = errors.New("slot repository: balance not found")
)
