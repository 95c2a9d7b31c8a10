package leaderboard

import (
	"time"

	"github.com/google/uuid"

	"github.com/clawpad/clawpad/types"
)

type AgentResponse struct {
	Id             uuid.UUID  `json:"id" extensions:"x-order:0"`
	Name           string     `json:"name" extensions:"x-order:1"`
	Description    *string    `json:"description" extensions:"x-order:2"`
	WalletAddress  *string    `json:"wallet_address" extensions:"x-order:3"`
	Rank           *int64     `json:"rank" extensions:"x-order:4"`
	Skills         []string   `json:"skills" extensions:"x-order:5"`
	Status         *string    `json:"status" extensions:"x-order:6"`
	SuccessRate    *float64   `json:"success_rate" extensions:"x-order:7"`
	TokensLaunched *int64     `json:"tokens_launched" extensions:"x-order:8"`
	TotalEarnings  *float64   `json:"total_earnings" extensions:"x-order:9"`
	TotalVolume    *float64   `json:"total_volume" extensions:"x-order:10"`
	JoinedAt       *time.Time `json:"joined_at" extensions:"x-order:11"`
	CreatedAt      time.Time  `json:"created_at" extensions:"x-order:12"`
}

type AgentsResponse struct {
	Agents []AgentResponse `json:"agents"`
}

type AgentByNameResponse struct {
	Agent AgentResponse `json:"agent"`
}

type TokenResponse struct {
	Id             uuid.UUID  `json:"id" extensions:"x-order:0"`
	Name           string     `json:"name" extensions:"x-order:1"`
	Ticker         string     `json:"ticker" extensions:"x-order:2"`
	Description    *string    `json:"description" extensions:"x-order:3"`
	MintAddress    *string    `json:"mint_address" extensions:"x-order:4"`
	CreatorAgentId *uuid.UUID `json:"creator_agent_id" extensions:"x-order:5"`
	CreatorName    *string    `json:"creator_name,omitempty" extensions:"x-order:6"`
	CreatorWallet  *string    `json:"creator_wallet,omitempty" extensions:"x-order:7"`
	Price          *float64   `json:"price" extensions:"x-order:8"`
	Mcap           *float64   `json:"mcap" extensions:"x-order:9"`
	Change24h      *float64   `json:"change_24h" extensions:"x-order:10"`
	Volume24h      *float64   `json:"volume_24h" extensions:"x-order:11"`
	Txns24h        *int64     `json:"txns_24h" extensions:"x-order:12"`
	Holders        *int64     `json:"holders" extensions:"x-order:13"`
	CirculatingPct *float64   `json:"circulating_pct" extensions:"x-order:14"`
	TotalSupply    *string    `json:"total_supply" extensions:"x-order:15"`
	Verified       *bool      `json:"verified" extensions:"x-order:16"`
	CreatedAt      time.Time  `json:"created_at" extensions:"x-order:17"`
}

type TokensResponse struct {
	Tokens []TokenResponse `json:"tokens"`
}

type TokenByTickerResponse struct {
	Token TokenResponse `json:"token"`
}

type TradeResponse struct {
	Id        uuid.UUID  `json:"id" extensions:"x-order:0"`
	TokenId   *uuid.UUID `json:"token_id" extensions:"x-order:1"`
	TradeType string     `json:"trade_type" extensions:"x-order:2"`
	Amount    string     `json:"amount" extensions:"x-order:3"`
	SolAmount float64    `json:"sol_amount" extensions:"x-order:4"`
	CreatedAt time.Time  `json:"created_at" extensions:"x-order:5"`
}

type TradesResponse struct {
	Trades []TradeResponse `json:"trades"`
}

type ActivityResponse struct {
	Id        uuid.UUID  `json:"id" extensions:"x-order:0"`
	AgentId   *uuid.UUID `json:"agent_id" extensions:"x-order:1"`
	Action    string     `json:"action" extensions:"x-order:2"`
	Detail    *string    `json:"detail" extensions:"x-order:3"`
	CreatedAt time.Time  `json:"created_at" extensions:"x-order:4"`
}

type AgentActivityResponse struct {
	Activity []ActivityResponse `json:"activity"`
}

type PlatformStatsResponse struct {
	ActiveAgents   *int64    `json:"active_agents" extensions:"x-order:0"`
	TokensLaunched *int64    `json:"tokens_launched" extensions:"x-order:1"`
	TotalVolume    *float64  `json:"total_volume" extensions:"x-order:2"`
	UpdatedAt      time.Time `json:"updated_at" extensions:"x-order:3"`
}

type StatsResponse struct {
	Stats *PlatformStatsResponse `json:"stats"`
}

// tokenRow is a token joined with its creator agent.
type tokenRow struct {
	types.Token   `gorm:"embedded"`
	CreatorName   *string
	CreatorWallet *string
}
