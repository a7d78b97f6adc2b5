package ratelimiter

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var _ RateLimiterInterface = (*RateLimiter)(nil)

func TestRateLimiter_Allow_Burst(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 3)

	for i := 0; i < 3; i++ {
		assert.True(t, rl.Allow("10.0.0.1"), "request %d should be within burst", i+1)
	}
	assert.False(t, rl.Allow("10.0.0.1"), "4th request should be limited")

	// 別のキーは独立したバケットを持つ
	assert.True(t, rl.Allow("10.0.0.2"))
	assert.Equal(t, 2, rl.Len())
}

func TestRateLimiter_ZeroBurstClamped(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 0)

	assert.True(t, rl.Allow("k"))
	assert.False(t, rl.Allow("k"))
}

func TestRateLimiter_Sweep(t *testing.T) {
	t.Parallel()

	current := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	rl := NewRateLimiter(10, 10)
	rl.now = func() time.Time { return current }

	rl.Allow("old")
	current = current.Add(2 * time.Minute)
	rl.Allow("recent")
	current = current.Add(2 * time.Minute)

	rl.Sweep()

	assert.Equal(t, 1, rl.Len())
	rl.mu.Lock()
	_, ok := rl.visitors["recent"]
	rl.mu.Unlock()
	assert.True(t, ok)
}

func TestRateLimiter_Run_StopsOnCancel(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(10, 10)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		rl.Run(ctx, time.Millisecond)
		close(done)
	}()

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRateLimiter_Concurrent(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(0.001, 50)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if rl.Allow("shared") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 50, allowed)
}
