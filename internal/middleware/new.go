package middleware

import (
	"task-portal/pkg/log"
)

// Config holds the settings of the internal boundary.
type Config struct {
	InternalKey     string   // Shared key trusted callers send in X-Internal-Key
	AllowedIPs      []string // IP / CIDR allowlist (optional)
	RateLimitPerMin int      // Max requests per minute per client address
}

type Middleware struct {
	l        log.Logger
	security *SecurityValidator
}

func New(l log.Logger, cfg Config) Middleware {
	return Middleware{
		l:        l,
		security: NewSecurityValidator(cfg),
	}
}
