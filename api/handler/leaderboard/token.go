package leaderboard

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/clawpad/clawpad/api/handler/common"
	"github.com/clawpad/clawpad/types"
)

func (h *LeaderboardHandler) tokensWithCreator(c *fiber.Ctx) *gorm.DB {
	return h.GetDatabase().WithContext(c.UserContext()).
		Table(types.Token{}.TableName()).
		Select("tokens.*, agents.name AS creator_name, agents.wallet_address AS creator_wallet").
		Joins("LEFT JOIN agents ON agents.id = tokens.creator_agent_id")
}

// GetTokens handles GET /leaderboard/v1/tokens
// @Summary Get tokens
// @Description Get launched tokens with their creator, ordered by 24h volume
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param limit query int false "Number of records to return (1..1000)" default(100)
// @Param offset query int false "Number of records to skip" default(0)
// @Success 200 {object} TokensResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /leaderboard/v1/tokens [get]
func (h *LeaderboardHandler) GetTokens(c *fiber.Ctx) error {
	pagination, err := common.ParsePagination(c)
	if err != nil {
		return types.NewBadRequestError(err.Error())
	}

	var rows []tokenRow
	query := h.tokensWithCreator(c).Order("tokens.volume_24h DESC NULLS LAST")
	if err := pagination.Apply(query).Scan(&rows).Error; err != nil {
		return h.dbError(c, "list tokens", err)
	}

	return c.JSON(TokensResponse{Tokens: mapSlice(rows, toTokenResponseWithCreator)})
}

// GetTokenByTicker handles GET /leaderboard/v1/tokens/by_ticker/{ticker}
// @Summary Get token by ticker
// @Description Get a single token by case-insensitive ticker, with its creator
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param ticker path string true "Token ticker"
// @Success 200 {object} TokenByTickerResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 404 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /leaderboard/v1/tokens/by_ticker/{ticker} [get]
func (h *LeaderboardHandler) GetTokenByTicker(c *fiber.Ctx) error {
	ticker, err := common.GetParams(c, "ticker")
	if err != nil {
		return types.NewBadRequestError(err.Error())
	}

	var rows []tokenRow
	if err := h.tokensWithCreator(c).
		Where("lower(tokens.ticker) = ?", strings.ToLower(ticker)).
		Limit(1).
		Scan(&rows).Error; err != nil {
		return h.dbError(c, "get token by ticker", err)
	}
	if len(rows) == 0 {
		return types.NewNotFoundError("token " + ticker)
	}

	return c.JSON(TokenByTickerResponse{Token: toTokenResponseWithCreator(rows[0])})
}

// GetTokenTrades handles GET /leaderboard/v1/tokens/{token_id}/trades
// @Summary Get recent trades of a token
// @Description Get the latest trades of a token
// @Tags Leaderboard
// @Accept json
// @Produce json
// @Param token_id path string true "Token id (uuid)"
// @Success 200 {object} TradesResponse
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /leaderboard/v1/tokens/{token_id}/trades [get]
func (h *LeaderboardHandler) GetTokenTrades(c *fiber.Ctx) error {
	tokenId, err := common.GetUUIDParam(c, "token_id")
	if err != nil {
		return types.NewBadRequestError(err.Error())
	}

	var trades []types.RecentTrade
	if err := h.GetDatabase().WithContext(c.UserContext()).
		Model(&types.RecentTrade{}).
		Where("token_id = ?", tokenId).
		Order("created_at DESC").
		Limit(types.RecentRowsLimit).
		Find(&trades).Error; err != nil {
		return h.dbError(c, "list token trades", err)
	}

	return c.JSON(TradesResponse{Trades: mapSlice(trades, ToTradeResponse)})
}
