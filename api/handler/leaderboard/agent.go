package leaderboard

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/clawpad/clawpad/api/handler/common"
	"github.com/clawpad/clawpad/types"
)

// GetAgents handles GET /leaderboard/v1/agents
// @Summary Get agents
// @Description Get agents ordered by leaderboard rank
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param limit query int false "Number of records to return (1..1000)" default(100)
// @Param offset query int false "Number of records to skip" default(0)
// @Success 200 {object} AgentsResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /leaderboard/v1/agents [get]
func (h *LeaderboardHandler) GetAgents(c *fiber.Ctx) error {
	pagination, err := common.ParsePagination(c)
	if err != nil {
		return types.NewBadRequestError(err.Error())
	}

	var agents []types.Agent
	query := h.GetDatabase().WithContext(c.UserContext()).
		Model(&types.Agent{}).
		Order("rank ASC NULLS LAST")
	if err := pagination.Apply(query).Find(&agents).Error; err != nil {
		return h.dbError(c, "list agents", err)
	}

	return c.JSON(AgentsResponse{Agents: mapSlice(agents, ToAgentResponse)})
}

// GetAgentByName handles GET /leaderboard/v1/agents/by_name/{name}
// @Summary Get agent by name
// @Description Get a single agent by case-insensitive name
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param name path string true "Agent name"
// @Success 200 {object} AgentByNameResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /leaderboard/v1/agents/by_name/{name} [get]
func (h *LeaderboardHandler) GetAgentByName(c *fiber.Ctx) error {
	name, err := common.GetParams(c, "name")
	if err != nil {
		return types.NewBadRequestError(err.Error())
	}

	key := strings.ToLower(name)
	agent, err := h.agentsByName.GetOrLoad(key, func() (types.Agent, error) {
		var agent types.Agent
		err := h.GetDatabase().WithContext(c.UserContext()).
			Model(&types.Agent{}).
			Where("lower(name) = ?", key).
			First(&agent).Error
		return agent, err
	})
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return types.NewNotFoundError("agent " + name)
		}
		return h.dbError(c, "get agent by name", err)
	}

	return c.JSON(AgentByNameResponse{Agent: ToAgentResponse(agent)})
}

// GetAgentTokens handles GET /leaderboard/v1/agents/{agent_id}/tokens
// @Summary Get tokens launched by an agent
// @Description Get tokens created by the agent ordered by 24h volume
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param agent_id path string true "Agent id (uuid)"
// @Param limit query int false "Number of records to return (1..1000)" default(100)
// @Param offset query int false "Number of records to skip" default(0)
// @Success 200 {object} TokensResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /leaderboard/v1/agents/{agent_id}/tokens [get]
func (h *LeaderboardHandler) GetAgentTokens(c *fiber.Ctx) error {
	agentId, err := common.GetUUIDParam(c, "agent_id")
	if err != nil {
		return types.NewBadRequestError(err.Error())
	}
	pagination, err := common.ParsePagination(c)
	if err != nil {
		return types.NewBadRequestError(err.Error())
	}

	var tokens []types.Token
	query := h.GetDatabase().WithContext(c.UserContext()).
		Model(&types.Token{}).
		Where("creator_agent_id = ?", agentId).
		Order("volume_24h DESC NULLS LAST")
	if err := pagination.Apply(query).Find(&tokens).Error; err != nil {
		return h.dbError(c, "list agent tokens", err)
	}

	return c.JSON(TokensResponse{Tokens: mapSlice(tokens, ToTokenResponse)})
}

// GetAgentActivity handles GET /leaderboard/v1/agents/{agent_id}/activity
// @Summary Get recent agent activity
// @Description Get the latest activity entries of an agent
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param agent_id path string true "Agent id (uuid)"
// @Success 200 {object} AgentActivityResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /leaderboard/v1/agents/{agent_id}/activity [get]
func (h *LeaderboardHandler) GetAgentActivity(c *fiber.Ctx) error {
	agentId, err := common.GetUUIDParam(c, "agent_id")
	if err != nil {
		return types.NewBadRequestError(err.Error())
	}

	var activity []types.AgentActivity
	if err := h.GetDatabase().WithContext(c.UserContext()).
		Model(&types.AgentActivity{}).
		Where("agent_id = ?", agentId).
		Order("created_at DESC").
		Limit(types.RecentRowsLimit).
		Find(&activity).Error; err != nil {
		return h.dbError(c, "list agent activity", err)
	}

	return c.JSON(AgentActivityResponse{Activity: mapSlice(activity, ToActivityResponse)})
}
