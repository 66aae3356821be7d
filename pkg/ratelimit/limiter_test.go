package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFixedIntervalAllow(t *testing.T) {
	t.Run("first request is allowed immediately", func(t *testing.T) {
		fi := NewFixedInterval(100 * time.Millisecond)
		assert.True(t, fi.Allow())
	})

	t.Run("second request within interval is denied", func(t *testing.T) {
		fi := NewFixedInterval(time.Second)
		assert.True(t, fi.Allow())
		assert.False(t, fi.Allow())
	})

	t.Run("request after interval is allowed", func(t *testing.T) {
		fi := NewFixedInterval(20 * time.Millisecond)
		assert.True(t, fi.Allow())
		time.Sleep(30 * time.Millisecond)
		assert.True(t, fi.Allow())
	})
}

func TestFixedIntervalWait(t *testing.T) {
	fi := NewFixedInterval(50 * time.Millisecond)

	start := time.Now()
	fi.Wait() // first call passes immediately
	fi.Wait() // second call must wait out the interval
	elapsed := time.Since(start)

	assert.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
}

func TestFixedIntervalReset(t *testing.T) {
	fi := NewFixedInterval(time.Hour)
	assert.True(t, fi.Allow())
	assert.False(t, fi.Allow())

	fi.Reset()
	assert.True(t, fi.Allow())
}

func TestTokenBucketAllow(t *testing.T) {
	t.Run("allows up to capacity", func(t *testing.T) {
		tb := NewTokenBucket(3, time.Minute)

		assert.True(t, tb.Allow())
		assert.True(t, tb.Allow())
		assert.True(t, tb.Allow())
		assert.False(t, tb.Allow())
	})

	t.Run("refills after period", func(t *testing.T) {
		tb := NewTokenBucket(1, 20*time.Millisecond)

		assert.True(t, tb.Allow())
		assert.False(t, tb.Allow())

		time.Sleep(30 * time.Millisecond)
		assert.True(t, tb.Allow())
	})
}

func TestTokenBucketReset(t *testing.T) {
	tb := NewTokenBucket(1, time.Hour)

	assert.True(t, tb.Allow())
	assert.False(t, tb.Allow())

	tb.Reset()
	assert.True(t, tb.Allow())
}
