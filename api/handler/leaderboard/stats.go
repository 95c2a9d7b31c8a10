package leaderboard

import (
	"github.com/gofiber/fiber/v2"

	"github.com/clawpad/clawpad/types"
)

// GetStats handles GET /leaderboard/v1/stats
// @Summary Get platform stats
// @Description Get the latest platform-wide statistics, null when none were recorded
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Success 200 {object} StatsResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /leaderboard/v1/stats [get]
func (h *LeaderboardHandler) GetStats(c *fiber.Ctx) error {
	var stats []types.PlatformStats
	if err := h.GetDatabase().WithContext(c.UserContext()).
		Model(&types.PlatformStats{}).
		Order("updated_at DESC").
		Limit(1).
		Find(&stats).Error; err != nil {
		return h.dbError(c, "get platform stats", err)
	}

	if len(stats) == 0 {
		return c.JSON(StatsResponse{})
	}
	return c.JSON(StatsResponse{Stats: &PlatformStatsResponse{
		ActiveAgents:   stats[0].ActiveAgents,
		TokensLaunched: stats[0].TokensLaunched,
		TotalVolume:    stats[0].TotalVolume,
		UpdatedAt:      stats[0].UpdatedAt,
	}})
}
