package middleware

import (
	"github.com/gin-gonic/gin"

	"task-portal/internal/model"
	"task-portal/pkg/metrics"
	"task-portal/pkg/response"
)

const (
	InternalKeyHeader = "X-Internal-Key"
	CallerIDHeader    = "X-Caller-ID"
	ScopeKey          = "scope"
	defaultCallerID   = "internal"
)

// InternalAuth admits only trusted callers. Rejections: 401 bad key,
// 403 address not allowed, 429 source over its rate limit.
//
// The client address is gin's ClientIP, so forwarding headers count only when
// the engine trusts the sending proxy (see gin.Engine.SetTrustedProxies).
// Buckets are keyed by that address: X-Caller-ID is a label chosen by the
// client and rotating it does not buy a fresh bucket.
func (m Middleware) InternalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		clientIP := c.ClientIP()

		if err := m.security.ValidateInternalKey(c.GetHeader(InternalKeyHeader)); err != nil {
			m.l.Warnf(ctx, "middleware.InternalAuth: %v", err)
			metrics.InternalAuthRejections.WithLabelValues("key").Inc()
			response.Unauthorized(c)
			return
		}

		if err := m.security.ValidateIPAddress(clientIP); err != nil {
			m.l.Warnf(ctx, "middleware.InternalAuth: %v", err)
			metrics.InternalAuthRejections.WithLabelValues("ip").Inc()
			response.Forbidden(c)
			return
		}

		callerID := c.GetHeader(CallerIDHeader)
		if callerID == "" {
			callerID = defaultCallerID
		}

		if err := m.security.CheckRateLimit(clientIP); err != nil {
			m.l.Warnf(ctx, "middleware.InternalAuth: %v", err)
			metrics.InternalAuthRejections.WithLabelValues("rate_limit").Inc()
			response.TooManyRequests(c)
			return
		}

		c.Set(ScopeKey, model.Scope{CallerID: callerID})
		c.Next()
	}
}

// GetScope returns the scope set by InternalAuth.
func GetScope(c *gin.Context) (model.Scope, bool) {
	v, ok := c.Get(ScopeKey)
	if !ok {
		return model.Scope{}, false
	}
	sc, ok := v.(model.Scope)
	return sc, ok
}
