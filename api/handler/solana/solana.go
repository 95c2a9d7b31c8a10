package solana

import (
	"encoding/json"
	"fmt"
	"math/big"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"

	"github.com/clawpad/clawpad/types"
)

// timestampLayout matches javascript's Date.toISOString
const timestampLayout = "2006-01-02T15:04:05.000Z"

const healthStatusOK = "ok"

func (h *SolanaHandler) solPrice(c *fiber.Ctx, _ *ActionRequest) error {
	price, err := h.upstream.GetSOLPrice(c.UserContext())
	return c.JSON(PriceResponse{
		Price: orFallback(h, ActionSOLPrice, price, err, h.fallbackSOLPrice()),
	})
}

func (h *SolanaHandler) tokenMetadata(c *fiber.Ctx, req *ActionRequest) error {
	if len(req.Mints) == 0 {
		return c.JSON(TokenMetadataResponse{Metadata: []json.RawMessage{}})
	}
	if limit := h.GetConfig().GetMaxMetadataMints(); len(req.Mints) > limit {
		return types.NewValidationError("mints", fmt.Sprintf("at most %d mints per request", limit))
	}

	metadata, err := h.upstream.GetTokenMetadata(c.UserContext(), req.Mints)
	return c.JSON(TokenMetadataResponse{
		Metadata: orFallback(h, ActionTokenMetadata, metadata, err, fallbackMetadata),
	})
}

func (h *SolanaHandler) balance(c *fiber.Ctx, req *ActionRequest) error {
	address := req.param("address")
	if address == "" {
		return types.NewMissingParamError("address")
	}

	lamports, err := h.upstream.GetBalance(c.UserContext(), address)
	lamports = orFallback(h, ActionBalance, lamports, err, fallbackBalance)

	return c.JSON(BalanceResponse{
		Balance: lamportsToSOL(lamports),
		Address: address,
	})
}

func (h *SolanaHandler) tokenAccounts(c *fiber.Ctx, req *ActionRequest) error {
	wallet := req.param("wallet")
	if wallet == "" {
		return types.NewMissingParamError("wallet")
	}

	accounts, err := h.upstream.GetTokenAccounts(c.UserContext(), wallet)
	return c.JSON(TokenAccountsResponse{
		Accounts: orFallback(h, ActionTokenAccounts, accounts, err, fallbackAccounts),
	})
}

func (h *SolanaHandler) blockhash(c *fiber.Ctx, _ *ActionRequest) error {
	var blockhash *string
	hash, err := h.upstream.GetLatestBlockhash(c.UserContext())
	if err == nil {
		blockhash = &hash
	}
	return c.JSON(BlockhashResponse{
		Blockhash: orFallback(h, ActionBlockhash, blockhash, err, fallbackBlockhash),
	})
}

func (h *SolanaHandler) health(c *fiber.Ctx, _ *ActionRequest) error {
	ctx := c.UserContext()

	var (
		g        errgroup.Group
		price    float64
		priceErr error
		rpcErr   error
	)
	g.Go(func() error {
		_, rpcErr = h.upstream.GetLatestBlockhash(ctx)
		return nil
	})
	g.Go(func() error {
		price, priceErr = h.upstream.GetSOLPrice(ctx)
		return nil
	})
	_ = g.Wait()

	if rpcErr != nil {
		h.GetLogger().Warn("rpc unreachable", "error", rpcErr)
	}

	return c.JSON(HealthResponse{
		Status:       healthStatusOK,
		RpcConnected: rpcErr == nil,
		SolPrice:     orFallback(h, ActionHealth, price, priceErr, h.fallbackSOLPrice()),
		Timestamp:    time.Now().UTC().Format(timestampLayout),
	})
}

// lamportsToSOL applies the fixed 10^9 scale once
func lamportsToSOL(lamports uint64) float64 {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(lamports), -types.LamportsDecimals).InexactFloat64()
}
