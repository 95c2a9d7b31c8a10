package solana

import (
	"encoding/json"

	"github.com/clawpad/clawpad/metrics"
)

// Fallback values answered when an upstream call fails. Client input errors
// never reach this table.
func (h *SolanaHandler) fallbackSOLPrice() float64 { return h.GetConfig().GetFallbackSOLPrice() }

var (
	fallbackMetadata  = []json.RawMessage{}
	fallbackBalance   = uint64(0)
	fallbackAccounts  = []json.RawMessage{}
	fallbackBlockhash = (*string)(nil)
)

// orFallback returns value, or fallback when err is set. The failure is
// logged and counted but never surfaced to the caller.
func orFallback[T any](h *SolanaHandler, action Action, value T, err error, fallback T) T {
	if err == nil {
		return value
	}
	h.GetLogger().Warn("upstream call failed, answering fallback",
		"action", string(action),
		"error", err)
	metrics.TrackFallback(string(action))
	return fallback
}
