package types

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Table struct {
	Model interface{}
	Name  string
}

type Agent struct {
	Id             uuid.UUID      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string         `gorm:"type:text;not null;index:agents_name_lower,expression:lower(name)"`
	Description    *string        `gorm:"type:text"`
	WalletAddress  *string        `gorm:"type:text"`
	Rank           *int64         `gorm:"type:bigint;index:agents_rank"`
	Skills         pq.StringArray `gorm:"type:text[]"`
	Status         *string        `gorm:"type:text"`
	SuccessRate    *float64       `gorm:"type:double precision"`
	TokensLaunched *int64         `gorm:"type:bigint"`
	TotalEarnings  *float64       `gorm:"type:double precision"`
	TotalVolume    *float64       `gorm:"type:double precision"`
	JoinedAt       *time.Time     `gorm:"type:timestamptz"`
	CreatedAt      time.Time      `gorm:"type:timestamptz;not null;default:now()"`
	UpdatedAt      time.Time      `gorm:"type:timestamptz;not null;default:now()"`
}

type Token struct {
	Id             uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name           string     `gorm:"type:text;not null"`
	Ticker         string     `gorm:"type:text;not null;index:tokens_ticker_lower,expression:lower(ticker)"`
	Description    *string    `gorm:"type:text"`
	MintAddress    *string    `gorm:"type:text"`
	CreatorAgentId *uuid.UUID `gorm:"type:uuid;index:tokens_creator_agent_id"`
	Price          *float64   `gorm:"type:double precision"`
	Mcap           *float64   `gorm:"type:double precision"`
	Change24h      *float64   `gorm:"column:change_24h;type:double precision"`
	Volume24h      *float64   `gorm:"column:volume_24h;type:double precision;index:tokens_volume_24h_desc,sort:desc"`
	Txns24h        *int64     `gorm:"column:txns_24h;type:bigint"`
	Holders        *int64     `gorm:"type:bigint"`
	CirculatingPct *float64   `gorm:"type:double precision"`
	TotalSupply    *string    `gorm:"type:text"`
	Verified       *bool      `gorm:"type:boolean"`
	CreatedAt      time.Time  `gorm:"type:timestamptz;not null;default:now()"`
	UpdatedAt      time.Time  `gorm:"type:timestamptz;not null;default:now()"`
}

type PlatformStats struct {
	Id             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	ActiveAgents   *int64    `gorm:"type:bigint"`
	TokensLaunched *int64    `gorm:"type:bigint"`
	TotalVolume    *float64  `gorm:"type:double precision"`
	UpdatedAt      time.Time `gorm:"type:timestamptz;not null;default:now()"`
}

type RecentTrade struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	TokenId   *uuid.UUID `gorm:"type:uuid;index:recent_trades_token_created,priority:1"`
	TradeType string     `gorm:"type:text;not null"`
	Amount    string     `gorm:"type:text;not null"`
	SolAmount float64    `gorm:"type:double precision;not null"`
	CreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();index:recent_trades_token_created,priority:2,sort:desc"`
}

type AgentActivity struct {
	Id        uuid.UUID  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AgentId   *uuid.UUID `gorm:"type:uuid;index:agent_activity_agent_created,priority:1"`
	Action    string     `gorm:"type:text;not null"`
	Detail    *string    `gorm:"type:text"`
	CreatedAt time.Time  `gorm:"type:timestamptz;not null;default:now();index:agent_activity_agent_created,priority:2,sort:desc"`
}

// Tables lists every model owned by the leaderboard schema.
var Tables = []Table{
	{Model: &Agent{}, Name: Agent{}.TableName()},
	{Model: &Token{}, Name: Token{}.TableName()},
	{Model: &PlatformStats{}, Name: PlatformStats{}.TableName()},
	{Model: &RecentTrade{}, Name: RecentTrade{}.TableName()},
	{Model: &AgentActivity{}, Name: AgentActivity{}.TableName()},
}

func (Agent) TableName() string {
	return "agents"
}

func (Token) TableName() string {
	return "tokens"
}

func (PlatformStats) TableName() string {
	return "platform_stats"
}

func (RecentTrade) TableName() string {
	return "recent_trades"
}

func (AgentActivity) TableName() string {
	return "agent_activity"
}
