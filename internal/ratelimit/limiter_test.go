package ratelimit

import (
	"context"
	"testing"
	"time"
)

func TestGetLimiterReusesPerGroupInstance(t *testing.T) {
	g := NewGroupLimiterWithDefaults()

	if g.GetLimiter("routes") != g.GetLimiter("routes") {
		t.Error("same group must share one limiter")
	}
	if g.GetLimiter("routes") == g.GetLimiter("auth") {
		t.Error("groups must not share limiters")
	}
}

func TestSetGroupLimitOverridesDefaults(t *testing.T) {
	g := NewGroupLimiter(RateLimitConfig{RequestsPerSecond: 100, BurstSize: 10})
	g.SetGroupLimit("auth", 1, 1)

	limiter := g.GetLimiter("auth")
	if !limiter.Allow() {
		t.Fatal("first call must pass the burst")
	}
	if limiter.Allow() {
		t.Error("second immediate call must exceed burst 1")
	}

	// Other groups keep the defaults.
	if !g.GetLimiter("locations").AllowN(time.Now(), 5) {
		t.Error("default group must allow a burst of 5")
	}
}

func TestWaitHonorsContextCancellation(t *testing.T) {
	g := NewGroupLimiterWithDefaults()
	g.SetGroupLimit("routes", 0.001, 1)
	g.GetLimiter("routes").Allow() // drain the burst

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := g.Wait(ctx, "routes"); err == nil {
		t.Error("Wait must fail once the context is cancelled")
	}
}

func TestWaitPassesWithinBurst(t *testing.T) {
	g := NewGroupLimiterWithDefaults()

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if err := g.Wait(ctx, "transportations"); err != nil {
		t.Fatalf("Wait: %v", err)
	}
}
