package jitter

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDuration_WithinBounds(t *testing.T) {
	base := 100 * time.Millisecond

	for i := 0; i < 100; i++ {
		d := Duration(base, DefaultJitter)
		assert.GreaterOrEqual(t, d, base)
		assert.LessOrEqual(t, d, base+base/2)
	}
}

func TestDuration_ZeroFactor(t *testing.T) {
	assert.Equal(t, time.Second, Duration(time.Second, 0))
}

func TestDurationWithSeed_Deterministic(t *testing.T) {
	a := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	b := DurationWithSeed(time.Second, DefaultJitter, rand.New(rand.NewSource(42)))
	assert.Equal(t, a, b)
}

func TestExponentialBackoff(t *testing.T) {
	base := 100 * time.Millisecond
	max := time.Second

	tests := []struct {
		attempt int
		want    time.Duration // без джиттера
	}{
		{attempt: 0, want: 100 * time.Millisecond},
		{attempt: 1, want: 200 * time.Millisecond},
		{attempt: 2, want: 400 * time.Millisecond},
		{attempt: 3, want: 800 * time.Millisecond},
		{attempt: 4, want: time.Second}, // упирается в потолок
		{attempt: 10, want: time.Second},
	}

	for _, tt := range tests {
		got := ExponentialBackoff(base, max, tt.attempt, 0)
		assert.Equal(t, tt.want, got, "attempt %d", tt.attempt)
	}
}

func TestExponentialBackoff_JitterNeverBelowBase(t *testing.T) {
	for i := 0; i < 50; i++ {
		d := ExponentialBackoff(time.Second, 30*time.Second, 0, DefaultJitter)
		assert.GreaterOrEqual(t, d, time.Second)
	}
}
