package middleware

import (
	"data-analysis-agents/config"
	"data-analysis-agents/pkg/log"
)

type Middleware struct {
	l       log.Logger
	limiter *ipRateLimiter
	cfg     config.RateLimitConfig
}

func New(l log.Logger, cfg config.RateLimitConfig) Middleware {
	return Middleware{
		l:       l,
		limiter: newIPRateLimiter(cfg.RequestsPerMin),
		cfg:     cfg,
	}
}
