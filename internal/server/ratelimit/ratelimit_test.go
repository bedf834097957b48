package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Whitelist:     make(map[string]bool),
		Blacklist:     make(map[string]bool),
		EndpointConfigs: []EndpointConfig{
			{Path: "/score", Method: "POST", Limit: 60, Window: time.Minute, Burst: 3},
		},
	}
}

func TestLimiterBurstThenDeny(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/score", "POST")
		require.True(t, allowed, "request %d within burst", i)
	}

	allowed, info := l.Allow("1.2.3.4", "/score", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 60, info.Limit)
	assert.GreaterOrEqual(t, info.RetryAfter, time.Duration(0))
}

func TestLimiterClientsIsolated(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 3; i++ {
		l.Allow("1.2.3.4", "/score", "POST")
	}
	allowed, _ := l.Allow("1.2.3.4", "/score", "POST")
	require.False(t, allowed)

	allowed, _ = l.Allow("5.6.7.8", "/score", "POST")
	assert.True(t, allowed, "other clients keep their own budget")
}

func TestLimiterWhitelistAndBlacklist(t *testing.T) {
	cfg := testConfig()
	cfg.Whitelist["10.0.0.1"] = true
	cfg.Blacklist["10.0.0.2"] = true

	l := NewLimiter(cfg)
	defer l.Stop()

	for i := 0; i < 20; i++ {
		allowed, _ := l.Allow("10.0.0.1", "/score", "POST")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("10.0.0.2", "/score", "POST")
	assert.False(t, allowed)
}

func TestLimiterDisabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := l.Allow("1.2.3.4", "/score", "POST")
		require.True(t, allowed)
	}
}

func TestLimiterDefaultFallback(t *testing.T) {
	cfg := testConfig()
	cfg.DefaultLimit = 2
	l := NewLimiter(cfg)
	defer l.Stop()

	l.Allow("1.2.3.4", "/unmatched", "GET")
	l.Allow("1.2.3.4", "/unmatched", "GET")
	allowed, info := l.Allow("1.2.3.4", "/unmatched", "GET")

	assert.False(t, allowed)
	assert.Equal(t, 2, info.Limit)
}

func TestLimiterRefill(t *testing.T) {
	cfg := testConfig()
	// 600 per minute refills 10 tokens per second.
	cfg.EndpointConfigs[0].Limit = 600
	cfg.EndpointConfigs[0].Burst = 1

	l := NewLimiter(cfg)
	defer l.Stop()

	allowed, _ := l.Allow("1.2.3.4", "/score", "POST")
	require.True(t, allowed)
	allowed, _ = l.Allow("1.2.3.4", "/score", "POST")
	require.False(t, allowed)

	time.Sleep(150 * time.Millisecond)
	allowed, _ = l.Allow("1.2.3.4", "/score", "POST")
	assert.True(t, allowed, "bucket refills over time")
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	exact := MatchEndpoint("/score", "POST", configs)
	require.NotNil(t, exact)
	assert.Equal(t, 60, exact.Limit)

	prefix := MatchEndpoint("/resumes/abc/score", "POST", configs)
	require.NotNil(t, prefix)
	assert.Equal(t, "/resumes/", prefix.Path)

	health := MatchEndpoint("/health", "GET", configs)
	require.NotNil(t, health)
	assert.Equal(t, 0, health.Limit)

	assert.Nil(t, MatchEndpoint("/resumes", "GET", configs))
	assert.Nil(t, MatchEndpoint("/score", "GET", configs))
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

func TestLimiterConcurrentAccess(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	done := make(chan struct{})
	for i := 0; i < 8; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			client := fmt.Sprintf("10.0.1.%d", n)
			for j := 0; j < 20; j++ {
				l.Allow(client, "/score", "POST")
			}
		}(i)
	}
	for i := 0; i < 8; i++ {
		<-done
	}
}
