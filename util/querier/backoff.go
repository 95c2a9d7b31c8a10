package querier

import (
	"math"
	"math/rand"
	"time"
)

const (
	maxBackoffDelay   = 2 * time.Second
	backoffMultiplier = 2.0
	jitterFactor      = 0.1
)

// calculateBackoffDelay calculates exponential backoff delay with jitter
func calculateBackoffDelay(attempt int, base time.Duration) time.Duration {
	if base <= 0 {
		return 0
	}
	if attempt <= 0 {
		return base
	}

	baseSeconds := base.Seconds()
	delaySeconds := baseSeconds * math.Pow(backoffMultiplier, float64(attempt-1))
	if maxSeconds := maxBackoffDelay.Seconds(); delaySeconds > maxSeconds {
		delaySeconds = maxSeconds
	}

	// +/- jitterFactor to avoid thundering herd
	delaySeconds += delaySeconds * jitterFactor * (2*rand.Float64() - 1)
	if delaySeconds < baseSeconds {
		delaySeconds = baseSeconds
	}

	return time.Duration(delaySeconds * float64(time.Second)).Round(time.Millisecond)
}
