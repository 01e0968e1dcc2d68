package ratelimit

import (
	"context"
	"sync"

	"golang.org/x/time/rate"
)

// GroupLimiter throttles calls to the backend API per endpoint group
// ("auth", "locations", "transportations", "routes"), so a burst of route
// searches cannot starve CRUD traffic.
type GroupLimiter struct {
	limiters map[string]*rate.Limiter
	mu       sync.RWMutex
	defaults RateLimitConfig
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	BurstSize         int
}

func DefaultConfig() RateLimitConfig {
	return RateLimitConfig{
		RequestsPerSecond: 10,
		BurstSize:         20,
	}
}

func NewGroupLimiter(config RateLimitConfig) *GroupLimiter {
	return &GroupLimiter{
		limiters: make(map[string]*rate.Limiter),
		defaults: config,
	}
}

func NewGroupLimiterWithDefaults() *GroupLimiter {
	return NewGroupLimiter(DefaultConfig())
}

func (g *GroupLimiter) GetLimiter(group string) *rate.Limiter {
	g.mu.RLock()
	limiter, exists := g.limiters[group]
	g.mu.RUnlock()

	if exists {
		return limiter
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if limiter, exists = g.limiters[group]; exists {
		return limiter
	}

	limiter = rate.NewLimiter(rate.Limit(g.defaults.RequestsPerSecond), g.defaults.BurstSize)
	g.limiters[group] = limiter
	return limiter
}

func (g *GroupLimiter) SetGroupLimit(group string, rps float64, burst int) {
	g.mu.Lock()
	defer g.mu.Unlock()

	g.limiters[group] = rate.NewLimiter(rate.Limit(rps), burst)
}

func (g *GroupLimiter) Wait(ctx context.Context, group string) error {
	return g.GetLimiter(group).Wait(ctx)
}
