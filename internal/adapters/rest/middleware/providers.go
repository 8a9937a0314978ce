package middleware

import (
	"github.com/google/wire"
)

// ProviderSet is the wire provider set for middleware components
var ProviderSet = wire.NewSet(
	ProvideRateLimiter,
)

// RateLimitConfig carries the minimal settings needed to construct the rate limiter
type RateLimitConfig struct {
	RPS   float64
	Burst int
}

// ProvideRateLimiter creates the publish rate limiter from RateLimitConfig
func ProvideRateLimiter(cfg RateLimitConfig) *RateLimiter {
	return NewRateLimiter(cfg.RPS, cfg.Burst)
}
