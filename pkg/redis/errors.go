package redis

import "errors"

var (
	// ErrHostRequired is returned when the Redis host is empty.
	ErrHostRequired = errors.New("redis: host is required")
	// ErrInvalidPort is returned when the Redis port is out of range.
	ErrInvalidPort = errors.New("redis: port must be between 1 and 65535")
)
