package middleware

import (
	"time"

	"fms-dashboard/pkg/log"
)

// RateLimitConfig sizes the per-client limiter.
type RateLimitConfig struct {
	PerMin     int
	MaxClients int
	TTL        time.Duration
}

type Middleware struct {
	l       log.Logger
	limiter *rateLimiter
}

func New(l log.Logger, rl RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newRateLimiter(rl),
	}
}
