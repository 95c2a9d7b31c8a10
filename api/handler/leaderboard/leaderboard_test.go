package leaderboard

import (
	"encoding/json"
	"errors"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/require"

	"github.com/clawpad/clawpad/api/handler/common"
	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/log"
	"github.com/clawpad/clawpad/orm/testutil"
)

var (
	agentId = uuid.MustParse("7c9e6679-7425-40de-944b-e07fc1f90ae7")
	tokenId = uuid.MustParse("16fd2706-8baf-433b-82eb-8c7fada847da")
	now     = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

func setup(t *testing.T) (*fiber.App, sqlmock.Sqlmock) {
	db, mock, err := testutil.NewMockDB()
	require.NoError(t, err)

	base := common.NewBaseHandler(db, &config.Config{}, log.NewDiscardLogger())
	app := fiber.New(fiber.Config{ErrorHandler: common.ErrorHandler})
	NewLeaderboardHandler(base).Register(app)
	return app, mock
}

func get(t *testing.T, app *fiber.App, path string, out any) int {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	if out != nil && resp.StatusCode == fiber.StatusOK {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp.StatusCode
}

func agentColumns() []string {
	return []string{"id", "name", "description", "wallet_address", "rank", "skills", "status",
		"success_rate", "tokens_launched", "total_earnings", "total_volume", "joined_at", "created_at", "updated_at"}
}

func tokenColumns(withCreator bool) []string {
	cols := []string{"id", "name", "ticker", "description", "mint_address", "creator_agent_id", "price", "mcap",
		"change_24h", "volume_24h", "txns_24h", "holders", "circulating_pct", "total_supply", "verified", "created_at", "updated_at"}
	if withCreator {
		cols = append(cols, "creator_name", "creator_wallet")
	}
	return cols
}

func TestGetAgents(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "agents" ORDER BY rank ASC NULLS LAST LIMIT`).
		WillReturnRows(sqlmock.NewRows(agentColumns()).
			AddRow(agentId.String(), "Nova", "market maker", "Wallet1", 1, "{trading,research}", "active",
				97.5, 12, 1500.25, 88000.0, now, now, now).
			AddRow(uuid.NewString(), "Echo", nil, nil, 2, nil, nil, nil, nil, nil, nil, nil, now, now))

	var res AgentsResponse
	require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/agents", &res))
	require.Len(t, res.Agents, 2)
	require.Equal(t, agentId, res.Agents[0].Id)
	require.Equal(t, []string{"trading", "research"}, res.Agents[0].Skills)
	require.Equal(t, int64(1), *res.Agents[0].Rank)
	require.Equal(t, "Echo", res.Agents[1].Name)
	require.Empty(t, res.Agents[1].Skills)
	require.Nil(t, res.Agents[1].WalletAddress)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentsOffset(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "agents" ORDER BY rank ASC NULLS LAST LIMIT \$1 OFFSET \$2`).
		WithArgs(5, 10).
		WillReturnRows(sqlmock.NewRows(agentColumns()))

	var res AgentsResponse
	require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/agents?limit=5&offset=10", &res))
	require.NotNil(t, res.Agents)
	require.Empty(t, res.Agents)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentsInvalidPagination(t *testing.T) {
	app, mock := setup(t)

	require.Equal(t, fiber.StatusBadRequest, get(t, app, "/leaderboard/v1/agents?limit=0", nil))
	require.Equal(t, fiber.StatusBadRequest, get(t, app, "/leaderboard/v1/agents?limit=5000", nil))
	require.Equal(t, fiber.StatusBadRequest, get(t, app, "/leaderboard/v1/agents?offset=-3", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentsDatabaseError(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "agents"`).WillReturnError(errors.New("connection reset"))

	require.Equal(t, fiber.StatusInternalServerError, get(t, app, "/leaderboard/v1/agents", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentsStatementTimeout(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "agents"`).
		WillReturnError(&pgconn.PgError{Code: "57014", Message: "canceling statement due to statement timeout"})

	var res common.ErrorResponse
	resp, err := app.Test(httptest.NewRequest("GET", "/leaderboard/v1/agents", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusGatewayTimeout, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&res))
	require.Equal(t, "database list agents operation timed out", res.Error)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentByNameIsCached(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "agents" WHERE lower\(name\) = \$1 ORDER BY "agents"."id" LIMIT`).
		WithArgs("nova", 1).
		WillReturnRows(sqlmock.NewRows(agentColumns()).
			AddRow(agentId.String(), "Nova", nil, "Wallet1", 1, "{}", "active", nil, nil, nil, nil, nil, now, now))

	for _, name := range []string{"Nova", "NOVA", "nova"} {
		var res AgentByNameResponse
		require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/agents/by_name/"+name, &res))
		require.Equal(t, agentId, res.Agent.Id)
	}
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentByNameNotFound(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "agents" WHERE lower\(name\) = \$1`).
		WillReturnRows(sqlmock.NewRows(agentColumns()))

	require.Equal(t, fiber.StatusNotFound, get(t, app, "/leaderboard/v1/agents/by_name/ghost", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentTokens(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "tokens" WHERE creator_agent_id = \$1 ORDER BY volume_24h DESC NULLS LAST LIMIT`).
		WithArgs(agentId, 100).
		WillReturnRows(sqlmock.NewRows(tokenColumns(false)).
			AddRow(tokenId.String(), "Claw", "CLAW", nil, "Mint1", agentId.String(), 0.0012, 120000.0,
				4.2, 35000.0, 410, 900, 62.5, "1000000000", true, now, now))

	var res TokensResponse
	require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/agents/"+agentId.String()+"/tokens", &res))
	require.Len(t, res.Tokens, 1)
	require.Equal(t, "CLAW", res.Tokens[0].Ticker)
	require.Equal(t, agentId, *res.Tokens[0].CreatorAgentId)
	require.Nil(t, res.Tokens[0].CreatorName)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentTokensInvalidId(t *testing.T) {
	app, mock := setup(t)

	require.Equal(t, fiber.StatusBadRequest, get(t, app, "/leaderboard/v1/agents/not-a-uuid/tokens", nil))
	require.Equal(t, fiber.StatusBadRequest, get(t, app, "/leaderboard/v1/agents/not-a-uuid/activity", nil))
	require.Equal(t, fiber.StatusBadRequest, get(t, app, "/leaderboard/v1/tokens/not-a-uuid/trades", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetAgentActivity(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "agent_activity" WHERE agent_id = \$1 ORDER BY created_at DESC LIMIT`).
		WithArgs(agentId, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "agent_id", "action", "detail", "created_at"}).
			AddRow(uuid.NewString(), agentId.String(), "launch", "launched CLAW", now))

	var res AgentActivityResponse
	require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/agents/"+agentId.String()+"/activity", &res))
	require.Len(t, res.Activity, 1)
	require.Equal(t, "launch", res.Activity[0].Action)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTokens(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT tokens\.\*, agents\.name AS creator_name, agents\.wallet_address AS creator_wallet FROM "tokens" LEFT JOIN agents ON agents\.id = tokens\.creator_agent_id ORDER BY tokens\.volume_24h DESC NULLS LAST LIMIT`).
		WillReturnRows(sqlmock.NewRows(tokenColumns(true)).
			AddRow(tokenId.String(), "Claw", "CLAW", nil, "Mint1", agentId.String(), 0.0012, 120000.0,
				4.2, 35000.0, 410, 900, 62.5, "1000000000", true, now, now, "Nova", "Wallet1"))

	var res TokensResponse
	require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/tokens", &res))
	require.Len(t, res.Tokens, 1)
	require.Equal(t, "Nova", *res.Tokens[0].CreatorName)
	require.Equal(t, "Wallet1", *res.Tokens[0].CreatorWallet)
	require.Equal(t, int64(410), *res.Tokens[0].Txns24h)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTokenByTicker(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`FROM "tokens" LEFT JOIN agents ON .* WHERE lower\(tokens\.ticker\) = \$1 LIMIT`).
		WithArgs("claw", 1).
		WillReturnRows(sqlmock.NewRows(tokenColumns(true)).
			AddRow(tokenId.String(), "Claw", "CLAW", nil, "Mint1", nil, nil, nil,
				nil, nil, nil, nil, nil, nil, nil, now, now, nil, nil))

	var res TokenByTickerResponse
	require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/tokens/by_ticker/Claw", &res))
	require.Equal(t, tokenId, res.Token.Id)
	require.Nil(t, res.Token.CreatorAgentId)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTokenByTickerNotFound(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`FROM "tokens" LEFT JOIN agents`).
		WillReturnRows(sqlmock.NewRows(tokenColumns(true)))

	require.Equal(t, fiber.StatusNotFound, get(t, app, "/leaderboard/v1/tokens/by_ticker/NOPE", nil))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetTokenTrades(t *testing.T) {
	app, mock := setup(t)

	mock.ExpectQuery(`SELECT \* FROM "recent_trades" WHERE token_id = \$1 ORDER BY created_at DESC LIMIT`).
		WithArgs(tokenId, 10).
		WillReturnRows(sqlmock.NewRows([]string{"id", "token_id", "trade_type", "amount", "sol_amount", "created_at"}).
			AddRow(uuid.NewString(), tokenId.String(), "buy", "125000", 1.75, now).
			AddRow(uuid.NewString(), tokenId.String(), "sell", "5000", 0.07, now.Add(-time.Minute)))

	var res TradesResponse
	require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/tokens/"+tokenId.String()+"/trades", &res))
	require.Len(t, res.Trades, 2)
	require.Equal(t, "buy", res.Trades[0].TradeType)
	require.Equal(t, 1.75, res.Trades[0].SolAmount)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestGetStats(t *testing.T) {
	t.Run("latest row", func(t *testing.T) {
		app, mock := setup(t)
		mock.ExpectQuery(`SELECT \* FROM "platform_stats" ORDER BY updated_at DESC LIMIT`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "active_agents", "tokens_launched", "total_volume", "updated_at"}).
				AddRow(uuid.NewString(), 42, 310, 1250000.5, now))

		var res StatsResponse
		require.Equal(t, fiber.StatusOK, get(t, app, "/leaderboard/v1/stats", &res))
		require.NotNil(t, res.Stats)
		require.Equal(t, int64(42), *res.Stats.ActiveAgents)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no rows", func(t *testing.T) {
		app, mock := setup(t)
		mock.ExpectQuery(`SELECT \* FROM "platform_stats"`).
			WillReturnRows(sqlmock.NewRows([]string{"id", "active_agents", "tokens_launched", "total_volume", "updated_at"}))

		resp, err := app.Test(httptest.NewRequest("GET", "/leaderboard/v1/stats", nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		var raw map[string]any
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&raw))
		require.Contains(t, raw, "stats")
		require.Nil(t, raw["stats"])
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
