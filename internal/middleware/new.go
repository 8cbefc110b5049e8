package middleware

import (
	"personal-timeline/internal/identity"
	"personal-timeline/pkg/log"
)

// RateLimitConfig tunes the per-client request budget.
type RateLimitConfig struct {
	RequestsPerMin int
	ClientCapacity int
}

type Middleware struct {
	l         log.Logger
	identity  identity.UseCase
	rateLimit RateLimitConfig
}

func New(l log.Logger, identityUC identity.UseCase, rateLimit RateLimitConfig) Middleware {
	return Middleware{
		l:         l,
		identity:  identityUC,
		rateLimit: rateLimit,
	}
}
