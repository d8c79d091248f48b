package redis

import "time"

const (
	// DefaultConnectTimeout is the maximum time to wait for the initial ping.
	DefaultConnectTimeout = 5 * time.Second
)
