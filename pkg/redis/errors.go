package redis

import "errors"

var (
	ErrMissingURL = errors.New("redis.missing_url")
	ErrInvalidURL = errors.New("redis.invalid_url")
	ErrNotReady   = errors.New("redis.not_ready")
	ErrPingFailed = errors.New("redis.ping_failed")
)
