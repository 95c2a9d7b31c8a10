package querier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func resetHealthTracker() {
	healthTrackerMu.Lock()
	healthTracker = make(map[string]*endpointHealth)
	healthTrackerMu.Unlock()
}

func TestGetEndpointHealthReturnsSameInstance(t *testing.T) {
	resetHealthTracker()

	h1 := getEndpointHealth("https://rpc-a.example")
	require.Same(t, h1, getEndpointHealth("https://rpc-a.example"))
	require.NotSame(t, h1, getEndpointHealth("https://rpc-b.example"))
}

func TestEndpointHealthThresholdAndReset(t *testing.T) {
	resetHealthTracker()
	endpoint := "https://rpc-threshold.example"

	for i := 0; i < failureThreshold-1; i++ {
		recordEndpointFailure(endpoint)
		require.True(t, isEndpointHealthy(endpoint))
	}

	recordEndpointFailure(endpoint)
	require.False(t, isEndpointHealthy(endpoint))
	require.NotZero(t, getEndpointHealth(endpoint).lastFailureTime.Load())

	recordEndpointSuccess(endpoint)
	require.Equal(t, int32(0), getEndpointHealth(endpoint).consecutiveFailures.Load())
	require.True(t, isEndpointHealthy(endpoint))
}

func TestEndpointHealthRecovery(t *testing.T) {
	resetHealthTracker()
	endpoint := "https://rpc-recovery.example"

	for i := 0; i < failureThreshold; i++ {
		recordEndpointFailure(endpoint)
	}
	require.False(t, isEndpointHealthy(endpoint))

	getEndpointHealth(endpoint).lastFailureTime.Store(time.Now().Add(-recoveryTimeout - time.Second).UnixNano())
	require.True(t, isEndpointHealthy(endpoint))
}

func TestFindHealthyEndpoint(t *testing.T) {
	resetHealthTracker()
	endpoints := []string{"https://rpc-1.example", "https://rpc-2.example", "https://rpc-3.example"}

	require.Equal(t, 0, findHealthyEndpoint(endpoints))

	for i, endpoint := range endpoints {
		for j := 0; j < failureThreshold; j++ {
			recordEndpointFailure(endpoint)
		}
		if i < len(endpoints)-1 {
			require.Equal(t, i+1, findHealthyEndpoint(endpoints))
		}
	}

	// none healthy falls back to the first
	require.Equal(t, 0, findHealthyEndpoint(endpoints))
}

func TestConcurrentHealthOperations(t *testing.T) {
	resetHealthTracker()
	endpoint := "https://rpc-concurrent.example"

	var wg sync.WaitGroup
	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				if worker%2 == 0 {
					recordEndpointFailure(endpoint)
				} else {
					recordEndpointSuccess(endpoint)
				}
				_ = isEndpointHealthy(endpoint)
			}
		}(i)
	}
	wg.Wait()

	require.GreaterOrEqual(t, getEndpointHealth(endpoint).consecutiveFailures.Load(), int32(0))

	healthTrackerMu.RLock()
	defer healthTrackerMu.RUnlock()
	require.Len(t, healthTracker, 1)
}
