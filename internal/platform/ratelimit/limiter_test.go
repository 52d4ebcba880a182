package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLimiter_Allow(t *testing.T) {
	t.Run("admits up to the limit", func(t *testing.T) {
		l := New(3, time.Minute)
		for i := 0; i < 3; i++ {
			res := l.Allow("client-a")
			assert.True(t, res.Allowed)
		}
		res := l.Allow("client-a")
		assert.False(t, res.Allowed)
		assert.Equal(t, 0, res.Remaining)
	})

	t.Run("remaining counts down", func(t *testing.T) {
		l := New(5, time.Minute)
		res := l.Allow("client-a")
		assert.Equal(t, 4, res.Remaining)
		res = l.Allow("client-a")
		assert.Equal(t, 3, res.Remaining)
	})

	t.Run("keys are isolated", func(t *testing.T) {
		l := New(1, time.Minute)
		assert.True(t, l.Allow("client-a").Allowed)
		assert.False(t, l.Allow("client-a").Allowed)
		assert.True(t, l.Allow("client-b").Allowed)
	})

	t.Run("window slides", func(t *testing.T) {
		l := New(1, 20*time.Millisecond)
		assert.True(t, l.Allow("client-a").Allowed)
		assert.False(t, l.Allow("client-a").Allowed)

		time.Sleep(30 * time.Millisecond)
		assert.True(t, l.Allow("client-a").Allowed)
	})

	t.Run("reset clears the budget", func(t *testing.T) {
		l := New(1, time.Minute)
		assert.True(t, l.Allow("client-a").Allowed)
		l.Reset("client-a")
		assert.True(t, l.Allow("client-a").Allowed)
	})
}
