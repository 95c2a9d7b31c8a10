package status

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/clawpad/clawpad/config"
)

const pingTimeout = 2 * time.Second

// GetStatus handles GET /status
// @Summary Service status
// @Description Get build information and whether the leaderboard database is reachable
// @Tags App
// @Accept json
// @Produce json
// @Success 200 {object} StatusResponse
// @Router /status [get]
func (h *StatusHandler) GetStatus(c *fiber.Ctx) error {
	res := &StatusResponse{
		Version:     config.Version,
		CommitHash:  config.CommitHash,
		Environment: h.GetConfig().GetEnvironment(),
		Database:    DatabaseDisabled,
	}

	if db := h.GetDatabase(); db != nil {
		res.LeaderboardEnabled = true

		ctx, cancel := context.WithTimeout(c.UserContext(), pingTimeout)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			h.GetLogger().Warn("database ping failed", "error", err)
			h.TrackError("database_ping")
			res.Database = DatabaseUnavailable
		} else {
			res.Database = DatabaseOK
		}
	}

	return c.JSON(res)
}
