package middleware

import (
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateInternalKey(t *testing.T) {
	v := NewSecurityValidator(Config{InternalKey: "s3cret", RateLimitPerMin: 60})

	assert.NoError(t, v.ValidateInternalKey("s3cret"))
	assert.EqualError(t, v.ValidateInternalKey(""), "missing internal key")
	assert.EqualError(t, v.ValidateInternalKey("s3cre"), "invalid internal key")

	unset := NewSecurityValidator(Config{RateLimitPerMin: 60})
	assert.EqualError(t, unset.ValidateInternalKey("anything"), "internal key not configured")
}

func TestValidateIPAddress(t *testing.T) {
	v := NewSecurityValidator(Config{AllowedIPs: []string{"10.0.0.0/8", "192.168.1.5", "bad/cidr"}, RateLimitPerMin: 60})

	tests := []struct {
		name    string
		ip      string
		allowed bool
	}{
		{name: "cidr match", ip: "10.1.2.3", allowed: true},
		{name: "exact match", ip: "192.168.1.5", allowed: true},
		{name: "not listed", ip: "172.16.0.1", allowed: false},
		{name: "unparsable", ip: "10.1.2.3, 172.16.0.1", allowed: false},
		{name: "empty", ip: "", allowed: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateIPAddress(tt.ip)
			if tt.allowed {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}

	open := NewSecurityValidator(Config{RateLimitPerMin: 60})
	assert.NoError(t, open.ValidateIPAddress("203.0.113.9"))
}

func TestRateLimiterPerSource(t *testing.T) {
	// 60/min -> burst of 6, refill far slower than the test runs.
	v := NewSecurityValidator(Config{RateLimitPerMin: 60})

	for i := 0; i < 6; i++ {
		assert.NoError(t, v.CheckRateLimit("10.0.0.1"))
	}
	assert.Error(t, v.CheckRateLimit("10.0.0.1"))

	// Other sources have their own bucket.
	assert.NoError(t, v.CheckRateLimit("10.0.0.2"))
}

func TestRateLimiterConcurrentFirstRequests(t *testing.T) {
	// 10/min -> burst of 1: exactly one of the racing first requests may pass.
	v := NewSecurityValidator(Config{RateLimitPerMin: 10})

	var allowed atomic.Int32
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if v.CheckRateLimit("10.0.0.1") == nil {
				allowed.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), allowed.Load())
}
