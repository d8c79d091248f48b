package repository

import "errors"

var (
	ErrListFailed  = errors.New("repository: failed to list games")
	ErrCountFailed = errors.New("repository: failed to count games")
)
