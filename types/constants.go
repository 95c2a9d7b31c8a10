package types

import "time"

// Upstream service names, used as log fields and metric labels.
const (
	ServiceSolanaRPC   = "solana-rpc"
	ServicePriceAPI    = "price-api"
	ServiceMetadataAPI = "metadata-api"
)

// Native currency scale: 1 SOL = 10^9 lamports.
const LamportsDecimals = 9

// Leaderboard constants
const (
	RecentRowsLimit        = 10
	AgentLookupCacheTTL    = 30 * time.Second
	AgentLookupCacheMaxLen = 1024
)
