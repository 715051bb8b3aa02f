package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenBucketAllowsBurstThenDenies(t *testing.T) {
	bucket := newTokenBucket(5, 1.0)

	for i := 0; i < 5; i++ {
		assert.True(t, bucket.allow(), "request %d within burst", i+1)
	}
	assert.False(t, bucket.allow())
}

func TestTokenBucketRefills(t *testing.T) {
	bucket := newTokenBucket(2, 100.0) // fast refill to keep the test quick

	assert.True(t, bucket.allow())
	assert.True(t, bucket.allow())
	assert.False(t, bucket.allow())

	time.Sleep(20 * time.Millisecond)
	assert.True(t, bucket.allow())
}

func TestTokenBucketStatus(t *testing.T) {
	bucket := newTokenBucket(10, 1.0)

	for i := 0; i < 4; i++ {
		bucket.allow()
	}

	remaining, resetTime := bucket.getStatus()
	assert.Equal(t, 6, remaining)
	assert.True(t, resetTime.After(time.Now()))
}

func TestLimiterEnforcesDefaultLimit(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  3,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, info := limiter.Allow("10.0.0.1", "/anything", "GET")
		require.True(t, allowed, "request %d", i+1)
		assert.Equal(t, 3, info.Limit)
	}

	allowed, info := limiter.Allow("10.0.0.1", "/anything", "GET")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterIsolatesClients(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
	})
	defer limiter.Stop()

	allowed, _ := limiter.Allow("10.0.0.1", "/x", "GET")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("10.0.0.1", "/x", "GET")
	assert.False(t, allowed)

	allowed, _ = limiter.Allow("10.0.0.2", "/x", "GET")
	assert.True(t, allowed, "second client has its own bucket")
}

func TestLimiterWhitelistAndBlacklist(t *testing.T) {
	limiter := NewLimiter(&Config{
		Enabled:       true,
		DefaultLimit:  1,
		DefaultWindow: time.Minute,
		Whitelist:     map[string]bool{"1.1.1.1": true},
		Blacklist:     map[string]bool{"2.2.2.2": true},
	})
	defer limiter.Stop()

	for i := 0; i < 10; i++ {
		allowed, _ := limiter.Allow("1.1.1.1", "/x", "GET")
		assert.True(t, allowed)
	}

	allowed, info := limiter.Allow("2.2.2.2", "/x", "GET")
	assert.False(t, allowed)
	assert.False(t, info.Allowed)
}

func TestLimiterDisabled(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("10.0.0.1", "/score", "POST")
		assert.True(t, allowed)
	}
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	score := MatchEndpoint("/score", "POST", configs)
	require.NotNil(t, score)
	assert.Equal(t, 30, score.Limit)

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Equal(t, 0, health.Limit)

	// Unknown paths fall through to the default limit
	assert.Nil(t, MatchEndpoint("/scores/abc", "GET", configs))

	// Method must match too
	assert.Nil(t, MatchEndpoint("/score", "GET", configs))
}

func TestMatchEndpointPrefix(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/resumes/", Method: "DELETE", Limit: 10, Window: time.Minute},
	}

	match := MatchEndpoint("/resumes/123", "DELETE", configs)
	require.NotNil(t, match)
	assert.Equal(t, 10, match.Limit)
}

func TestLoadConfigDisabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	cfg := LoadConfig()
	assert.False(t, cfg.Enabled)
}

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "true")
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "")
	t.Setenv("RATE_LIMIT_WHITELIST", "1.1.1.1, 2.2.2.2")

	cfg := LoadConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, 1000, cfg.DefaultLimit)
	assert.Equal(t, time.Minute, cfg.DefaultWindow)
	assert.True(t, cfg.Whitelist["1.1.1.1"])
	assert.True(t, cfg.Whitelist["2.2.2.2"])
	assert.NotEmpty(t, cfg.EndpointConfigs)
}
