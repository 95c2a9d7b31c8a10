package leaderboard

import (
	"context"
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/clawpad/clawpad/api/cache"
	"github.com/clawpad/clawpad/api/handler/common"
	ttlcache "github.com/clawpad/clawpad/cache"
	"github.com/clawpad/clawpad/types"
)

type LeaderboardHandler struct {
	*common.BaseHandler
	agentsByName *ttlcache.TTLCache[string, types.Agent]
}

var _ common.HandlerRegistrar = (*LeaderboardHandler)(nil)

func NewLeaderboardHandler(base *common.BaseHandler) *LeaderboardHandler {
	return &LeaderboardHandler{
		BaseHandler:  base,
		agentsByName: ttlcache.NewTTL[string, types.Agent](types.AgentLookupCacheMaxLen, types.AgentLookupCacheTTL),
	}
}

func (h *LeaderboardHandler) Register(router fiber.Router) {
	ttl := h.GetConfig().GetLeaderboardCacheTTL()
	leaderboard := router.Group("/leaderboard/v1")

	agents := leaderboard.Group("/agents")
	agents.Get("/", cache.WithExpiration(ttl), h.GetAgents)
	agents.Get("/by_name/:name", h.GetAgentByName)
	agents.Get("/:agent_id/tokens", cache.WithExpiration(ttl), h.GetAgentTokens)
	agents.Get("/:agent_id/activity", cache.WithExpiration(ttl), h.GetAgentActivity)

	tokens := leaderboard.Group("/tokens")
	tokens.Get("/", cache.WithExpiration(ttl), h.GetTokens)
	tokens.Get("/by_ticker/:ticker", cache.WithExpiration(ttl), h.GetTokenByTicker)
	tokens.Get("/:token_id/trades", cache.WithExpiration(ttl), h.GetTokenTrades)

	leaderboard.Get("/stats", cache.WithExpiration(ttl), h.GetStats)
}

// postgres query_canceled, raised by statement_timeout
const pgQueryCanceled = "57014"

// dbError logs a failed query and turns it into a 500, or a 504 when the
// statement was cancelled by a timeout.
func (h *LeaderboardHandler) dbError(c *fiber.Ctx, operation string, err error) error {
	var pgErr *pgconn.PgError
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &pgErr) && pgErr.Code == pgQueryCanceled) {
		h.TrackError("database_timeout")
		h.GetLogger().Warn("leaderboard query timed out",
			"operation", operation,
			"path", c.Path(),
			"error", err)
		return errors.Join(types.NewTimeoutError("database "+operation), err)
	}

	h.TrackError("database")
	h.GetLogger().Error("leaderboard query failed",
		"operation", operation,
		"path", c.Path(),
		"error", err)
	return types.NewDatabaseError(operation, err)
}
