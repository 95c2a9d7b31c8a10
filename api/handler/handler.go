package handler

import (
	"log/slog"

	"github.com/gofiber/fiber/v2"

	"github.com/clawpad/clawpad/api/handler/common"
	"github.com/clawpad/clawpad/api/handler/leaderboard"
	"github.com/clawpad/clawpad/api/handler/solana"
	"github.com/clawpad/clawpad/api/handler/status"
	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/orm"
)

// Register mounts every handler on router. The leaderboard routes exist only
// when a database is configured.
func Register(router fiber.Router, db *orm.Database, cfg *config.Config, logger *slog.Logger, upstream solana.Upstream) {
	base := common.NewBaseHandler(db, cfg, logger)
	handlers := []common.HandlerRegistrar{
		status.NewStatusHandler(base),
		solana.NewSolanaHandler(base, upstream),
	}
	if db != nil {
		handlers = append(handlers, leaderboard.NewLeaderboardHandler(base))
	}

	for _, handler := range handlers {
		handler.Register(router)
	}
}
