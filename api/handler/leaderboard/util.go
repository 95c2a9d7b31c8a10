package leaderboard

import "github.com/clawpad/clawpad/types"

func ToAgentResponse(agent types.Agent) AgentResponse {
	skills := []string(agent.Skills)
	if skills == nil {
		skills = []string{}
	}
	return AgentResponse{
		Id:             agent.Id,
		Name:           agent.Name,
		Description:    agent.Description,
		WalletAddress:  agent.WalletAddress,
		Rank:           agent.Rank,
		Skills:         skills,
		Status:         agent.Status,
		SuccessRate:    agent.SuccessRate,
		TokensLaunched: agent.TokensLaunched,
		TotalEarnings:  agent.TotalEarnings,
		TotalVolume:    agent.TotalVolume,
		JoinedAt:       agent.JoinedAt,
		CreatedAt:      agent.CreatedAt,
	}
}

func ToTokenResponse(token types.Token) TokenResponse {
	return TokenResponse{
		Id:             token.Id,
		Name:           token.Name,
		Ticker:         token.Ticker,
		Description:    token.Description,
		MintAddress:    token.MintAddress,
		CreatorAgentId: token.CreatorAgentId,
		Price:          token.Price,
		Mcap:           token.Mcap,
		Change24h:      token.Change24h,
		Volume24h:      token.Volume24h,
		Txns24h:        token.Txns24h,
		Holders:        token.Holders,
		CirculatingPct: token.CirculatingPct,
		TotalSupply:    token.TotalSupply,
		Verified:       token.Verified,
		CreatedAt:      token.CreatedAt,
	}
}

func toTokenResponseWithCreator(row tokenRow) TokenResponse {
	res := ToTokenResponse(row.Token)
	res.CreatorName = row.CreatorName
	res.CreatorWallet = row.CreatorWallet
	return res
}

func ToTradeResponse(trade types.RecentTrade) TradeResponse {
	return TradeResponse{
		Id:        trade.Id,
		TokenId:   trade.TokenId,
		TradeType: trade.TradeType,
		Amount:    trade.Amount,
		SolAmount: trade.SolAmount,
		CreatedAt: trade.CreatedAt,
	}
}

func ToActivityResponse(activity types.AgentActivity) ActivityResponse {
	return ActivityResponse{
		Id:        activity.Id,
		AgentId:   activity.AgentId,
		Action:    activity.Action,
		Detail:    activity.Detail,
		CreatedAt: activity.CreatedAt,
	}
}

func mapSlice[T, R any](items []T, fn func(T) R) []R {
	out := make([]R, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
