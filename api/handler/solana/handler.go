package solana

import (
	"context"
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	"github.com/clawpad/clawpad/api/handler/common"
	"github.com/clawpad/clawpad/sentry_integration"
)

// Upstream is the set of outbound calls the proxy needs. It is satisfied by
// *querier.Querier and replaced by fakes in tests.
type Upstream interface {
	GetSOLPrice(ctx context.Context) (float64, error)
	GetTokenMetadata(ctx context.Context, mints []string) ([]json.RawMessage, error)
	GetBalance(ctx context.Context, address string) (uint64, error)
	GetTokenAccounts(ctx context.Context, wallet string) ([]json.RawMessage, error)
	GetLatestBlockhash(ctx context.Context) (string, error)
}

type actionFunc func(c *fiber.Ctx, req *ActionRequest) error

type SolanaHandler struct {
	*common.BaseHandler
	upstream Upstream
	actions  map[Action]actionFunc
}

var _ common.HandlerRegistrar = (*SolanaHandler)(nil)

func NewSolanaHandler(base *common.BaseHandler, upstream Upstream) *SolanaHandler {
	h := &SolanaHandler{
		BaseHandler: base,
		upstream:    upstream,
	}
	h.actions = map[Action]actionFunc{
		ActionSOLPrice:      h.solPrice,
		ActionTokenMetadata: h.tokenMetadata,
		ActionBalance:       h.balance,
		ActionTokenAccounts: h.tokenAccounts,
		ActionBlockhash:     h.blockhash,
		ActionHealth:        h.health,
	}
	return h
}

func (h *SolanaHandler) Register(router fiber.Router) {
	// the second path keeps supabase-style client URLs working
	for _, path := range []string{"/solana-data", "/functions/v1/solana-data"} {
		router.Get(path, h.Dispatch)
		router.Post(path, h.Dispatch)
	}
}

// Dispatch handles GET and POST /solana-data
// @Summary Solana data proxy
// @Description Run one of the proxy actions. The action and its parameters may be given in the
// @Description query string or in a JSON body; query values win. Upstream failures are answered
// @Description with fallback values, never with an error.
// @Tags Solana
// @Accept json
// @Produce json
// @Param action query string false "Action" Enums(sol-price, token-metadata, balance, token-accounts, blockhash, health)
// @Param address query string false "Account address (balance)"
// @Param wallet query string false "Owner wallet (token-accounts)"
// @Param mints query []string false "Mint addresses (token-metadata)" collectionFormat(multi)
// @Param request body ActionRequest false "Request envelope"
// @Success 200 {object} PriceResponse "sol-price"
// @Success 200 {object} TokenMetadataResponse "token-metadata"
// @Success 200 {object} BalanceResponse "balance"
// @Success 200 {object} TokenAccountsResponse "token-accounts"
// @Success 200 {object} BlockhashResponse "blockhash"
// @Success 200 {object} HealthResponse "health"
// @Success 200 {object} UnknownActionResponse "unknown action"
// @Failure 400 {object} common.ErrorResponse
// @Failure 500 {object} common.ErrorResponse
// @Router /solana-data [get]
// @Router /solana-data [post]
func (h *SolanaHandler) Dispatch(c *fiber.Ctx) error {
	req, err := parseRequest(c)
	if err != nil {
		return err
	}

	action, ok := ParseAction(req.Action)
	if !ok {
		h.GetLogger().Debug("unknown action", "action", req.Action)
		return c.JSON(UnknownActionResponse{Error: UnknownActionMessage})
	}

	transaction, ctx := sentry_integration.StartSentryTransaction(c.UserContext(), "solana-data", "Serving action "+string(action))
	defer transaction.Finish()
	c.SetUserContext(ctx)

	return h.actions[action](c, req)
}
