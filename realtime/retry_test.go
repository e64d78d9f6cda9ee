package realtime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetryStateSchedule(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts:       4,
		InitialDelay:      100 * time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          10 * time.Second,
	}
	state := NewRetryState(policy)

	expected := []time.Duration{
		100 * time.Millisecond,
		100 * time.Millisecond,
		200 * time.Millisecond,
		400 * time.Millisecond,
	}
	for i, want := range expected {
		got, ok := state.NextDelay()
		require.Truef(t, ok, "attempt %d should still be within budget", i+1)
		assert.Equal(t, want, got)
	}

	_, ok := state.NextDelay()
	assert.False(t, ok)
}

func TestRetryStateCapsAtMaxDelay(t *testing.T) {
	policy := RetryPolicy{
		MaxAttempts:       8,
		InitialDelay:      500 * time.Millisecond,
		BackoffMultiplier: 2,
		MaxDelay:          8 * time.Second,
	}
	state := NewRetryState(policy)

	var last time.Duration
	for i := 0; i < policy.MaxAttempts; i++ {
		d, ok := state.NextDelay()
		require.True(t, ok)
		assert.LessOrEqual(t, d, policy.MaxDelay)
		last = d
	}
	assert.Equal(t, policy.MaxDelay, last)
}

func TestDefaultRetryPolicies(t *testing.T) {
	d := DownloadRetryPolicy()
	assert.Equal(t, 5, d.MaxAttempts)
	assert.Equal(t, 8*time.Second, d.MaxDelay)

	disc := DiscoveryRetryPolicy()
	assert.Equal(t, 10, disc.MaxAttempts)
	assert.Equal(t, 16*time.Second, disc.MaxDelay)
}
