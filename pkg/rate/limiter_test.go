package rate

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/time/rate"
)

func TestNoLimiter(t *testing.T) {
	l := &NoLimiter{}
	for i := 0; i < 10000; i++ {
		allowed, err := l.Allow("")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}
	assert.NoError(t, l.Wait(context.Background(), ""))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	assert.Error(t, l.Wait(ctx, ""))
}

func TestLocalRateLimiter(t *testing.T) {
	l := NewLocalRateLimiter(rate.Limit(2))

	for i := 0; i < 2; i++ {
		allowed, err := l.Allow("a")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err := l.Allow("a")
	assert.NoError(t, err)
	assert.False(t, allowed)

	// Ensure key partitioning is valid
	for i := 0; i < 2; i++ {
		allowed, err := l.Allow("b")
		assert.NoError(t, err)
		assert.True(t, allowed)
	}

	allowed, err = l.Allow("b")
	assert.NoError(t, err)
	assert.False(t, allowed)
}

func TestLocalRateLimiter_Wait(t *testing.T) {
	l := NewLocalRateLimiter(rate.Limit(10))

	for i := 0; i < 10; i++ {
		require.NoError(t, l.Wait(context.Background(), "getLatestBlockhash"))
	}

	// The bucket is drained, so the next token is ~100ms away
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()
	assert.Error(t, l.Wait(ctx, "getLatestBlockhash"))

	// Other keys are unaffected
	require.NoError(t, l.Wait(context.Background(), "sendTransaction"))

	start := time.Now()
	require.NoError(t, l.Wait(context.Background(), "getLatestBlockhash"))
	assert.True(t, time.Since(start) < time.Second)
}

func TestLocalRateLimiter_FractionalLimit(t *testing.T) {
	l := NewLocalRateLimiter(rate.Limit(0.5))

	allowed, err := l.Allow("a")
	require.NoError(t, err)
	assert.True(t, allowed)

	allowed, err = l.Allow("a")
	require.NoError(t, err)
	assert.False(t, allowed)
}
