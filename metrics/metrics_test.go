package metrics

import (
	"database/sql"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/clawpad/clawpad/log"
)

func TestGetHandlerPattern(t *testing.T) {
	tests := map[string]string{
		"":                                   "root",
		"/":                                  "root",
		"/health":                            "health",
		"/swagger/index.html":                "swagger",
		"/solana-data":                       "solana-data",
		"/functions/v1/solana-data":          "solana-data",
		"/leaderboard/v1/agents":             "leaderboard_agents",
		"/leaderboard/v1/tokens/by_ticker/X": "leaderboard_tokens",
		"/leaderboard/":                      "leaderboard",
		"/unknown":                           "other",
	}
	for path, want := range tests {
		require.Equal(t, want, GetHandlerPattern(path), path)
	}
}

func TestGetStatusClass(t *testing.T) {
	require.Equal(t, "2xx", GetStatusClass(200))
	require.Equal(t, "4xx", GetStatusClass(429))
	require.Equal(t, "5xx", GetStatusClass(503))
	require.Equal(t, "other", GetStatusClass(101))
}

func TestTrackFallback(t *testing.T) {
	counter := GetMetrics().Upstream.FallbacksTotal.WithLabelValues("blockhash")
	before := testutil.ToFloat64(counter)

	TrackFallback("blockhash")
	TrackFallback("blockhash")

	require.Equal(t, before+2, testutil.ToFloat64(counter))
}

type fakeStatsProvider struct {
	stats sql.DBStats
}

func (f *fakeStatsProvider) GetDBStats() (*sql.DBStats, error) {
	return &f.stats, nil
}

func TestDBStatsUpdaterAddsWaitCountDelta(t *testing.T) {
	dbMetrics := NewDatabaseMetrics()
	provider := &fakeStatsProvider{stats: sql.DBStats{InUse: 3, Idle: 1, WaitCount: 5}}
	updater := NewDBStatsUpdater(provider, log.NewDiscardLogger(), dbMetrics)
	defer updater.ticker.Stop()

	updater.updateStats()
	provider.stats.WaitCount = 8
	updater.updateStats()

	require.Equal(t, float64(8), testutil.ToFloat64(dbMetrics.ConnectionsWaitCount.WithLabelValues("total")))
	require.Equal(t, float64(3), testutil.ToFloat64(dbMetrics.ConnectionsActive))
}
