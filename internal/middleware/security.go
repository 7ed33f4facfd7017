package middleware

import (
	"crypto/subtle"
	"fmt"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/time/rate"
)

// SecurityValidator validates requests crossing the internal boundary.
type SecurityValidator struct {
	config      Config
	rateLimiter *rateLimiter
}

func NewSecurityValidator(config Config) *SecurityValidator {
	return &SecurityValidator{
		config:      config,
		rateLimiter: newRateLimiter(config.RateLimitPerMin),
	}
}

// ValidateInternalKey compares the presented key in constant time.
func (v *SecurityValidator) ValidateInternalKey(key string) error {
	if v.config.InternalKey == "" {
		return fmt.Errorf("internal key not configured")
	}
	if key == "" {
		return fmt.Errorf("missing internal key")
	}
	if subtle.ConstantTimeCompare([]byte(key), []byte(v.config.InternalKey)) != 1 {
		return fmt.Errorf("invalid internal key")
	}
	return nil
}

// ValidateIPAddress checks the client address against the allowlist. ip must
// come from a source the client cannot forge: the connection's remote address,
// or gin's ClientIP when only configured proxies are trusted.
func (v *SecurityValidator) ValidateIPAddress(ip string) error {
	if len(v.config.AllowedIPs) == 0 {
		return nil // No IP restriction
	}

	parsed := net.ParseIP(ip)
	if parsed == nil {
		return fmt.Errorf("unparsable client IP %q", ip)
	}

	for _, allowedIP := range v.config.AllowedIPs {
		if strings.Contains(allowedIP, "/") {
			_, ipNet, err := net.ParseCIDR(allowedIP)
			if err != nil {
				continue
			}
			if ipNet.Contains(parsed) {
				return nil
			}
			continue
		}
		if allowed := net.ParseIP(allowedIP); allowed != nil && allowed.Equal(parsed) {
			return nil
		}
	}

	return fmt.Errorf("IP %s not whitelisted", ip)
}

// CheckRateLimit enforces rate limiting
func (v *SecurityValidator) CheckRateLimit(source string) error {
	return v.rateLimiter.Allow(source)
}

// rateLimiter keeps one token bucket per key; idle buckets expire.
type rateLimiter struct {
	mu       sync.Mutex
	limiters *expirable.LRU[string, *rate.Limiter]
	rate     rate.Limit
	burst    int
}

func newRateLimiter(requestsPerMin int) *rateLimiter {
	burst := requestsPerMin / 10
	if burst < 1 {
		burst = 1
	}
	return &rateLimiter{
		limiters: expirable.NewLRU[string, *rate.Limiter](
			1000,          // Max 1000 unique sources
			nil,           // No eviction callback
			time.Minute*5, // TTL: 5 minutes
		),
		rate:  rate.Limit(float64(requestsPerMin) / 60.0), // Per second
		burst: burst,
	}
}

func (rl *rateLimiter) Allow(key string) error {
	rl.mu.Lock()
	limiter, ok := rl.limiters.Get(key)
	if !ok {
		limiter = rate.NewLimiter(rl.rate, rl.burst)
		rl.limiters.Add(key, limiter)
	}
	rl.mu.Unlock()

	if !limiter.Allow() {
		return fmt.Errorf("rate limit exceeded for %s", key)
	}
	return nil
}
