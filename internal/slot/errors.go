package slot

import "errors"

// Domain errors
var (
	// ErrInsufficientBalance - the session cannot afford one spin
	ErrInsufficientBalance = errors.New("slot: insufficient balance")

	// ErrSessionNotFound - no balance exists for the given session
	ErrSessionNotFound = errors.New("slot: session not found")

	// ErrSpinFailed - the balance store failed mid-spin
	ErrSpinFailed = errors.New("slot: spin failed")
)
