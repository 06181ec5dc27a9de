package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLimiterWithinBudget(t *testing.T) {
	l := NewLimiter(3, time.Minute)
	require.True(t, l.Allow("1.2.3.4"))
	require.True(t, l.Allow("1.2.3.4"))
	require.True(t, l.Allow("1.2.3.4"))
	require.False(t, l.Allow("1.2.3.4"))
	require.False(t, l.Allow("1.2.3.4"))
}

func TestLimiterKeysAreIndependent(t *testing.T) {
	l := NewLimiter(1, time.Minute)
	require.True(t, l.Allow("1.2.3.4"))
	require.False(t, l.Allow("1.2.3.4"))
	require.True(t, l.Allow("5.6.7.8"))
}

func TestLimiterWindowReset(t *testing.T) {
	l := NewLimiter(1, 30*time.Millisecond)
	require.True(t, l.Allow("1.2.3.4"))
	require.False(t, l.Allow("1.2.3.4"))
	time.Sleep(50 * time.Millisecond)
	require.True(t, l.Allow("1.2.3.4"))
}

func TestRemaining(t *testing.T) {
	l := NewLimiter(5, time.Minute)
	require.Equal(t, 5, l.Remaining("1.2.3.4"))
	l.Allow("1.2.3.4")
	l.Allow("1.2.3.4")
	require.Equal(t, 3, l.Remaining("1.2.3.4"))
	for i := 0; i < 10; i++ {
		l.Allow("1.2.3.4")
	}
	require.Equal(t, 0, l.Remaining("1.2.3.4"))
}

func TestLimiterManyClients(t *testing.T) {
	l := NewLimiter(2, time.Minute)
	for i := 0; i < 100; i++ {
		key := fmt.Sprintf("10.0.0.%d", i)
		require.True(t, l.Allow(key))
		require.True(t, l.Allow(key))
		require.False(t, l.Allow(key))
	}
}
