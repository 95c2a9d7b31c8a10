package querier

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"

	"github.com/clawpad/clawpad/sentry_integration"
	"github.com/clawpad/clawpad/types"
)

const (
	rpcCodeInvalidRequest = -32600
	rpcCodeInvalidParams  = -32602
)

type tokenAccountsResult struct {
	Value []json.RawMessage `json:"value"`
}

func rpcCall[T any](ctx context.Context, q *Querier, method string, params ...any) (*T, error) {
	payload := types.NewJSONRPCRequest(method, params...)

	span, ctx := sentry_integration.StartSentrySpan(ctx, method, "Calling "+method+" on the rpc provider")
	defer span.Finish()

	return executeWithEndpointRotation(ctx, q, q.RpcUrls, func(ctx context.Context, endpoint string) (*T, error) {
		body, err := q.post(ctx, types.ServiceSolanaRPC, method, endpoint, payload)
		if err != nil {
			return nil, err
		}

		res, err := extractResponse[types.JSONRPCResponse](body)
		if err != nil {
			return nil, types.NewUpstreamError(types.ServiceSolanaRPC, "invalid json-rpc response", err)
		}
		if res.Error != nil {
			rpcErr := types.NewUpstreamError(types.ServiceSolanaRPC, fmt.Sprintf("%s failed: code %d: %s", method, res.Error.Code, res.Error.Message), nil)
			if res.Error.Code == rpcCodeInvalidParams || res.Error.Code == rpcCodeInvalidRequest {
				return nil, permanent(rpcErr)
			}
			return nil, rpcErr
		}
		if len(res.Result) == 0 || string(res.Result) == "null" {
			return nil, types.NewUpstreamError(types.ServiceSolanaRPC, method+" returned no result", nil)
		}

		result, err := extractResponse[T](res.Result)
		if err != nil {
			return nil, types.NewUpstreamError(types.ServiceSolanaRPC, "failed to decode "+method+" result", err)
		}
		return &result, nil
	})
}

// GetBalance returns the native balance of address in lamports.
// The address is forwarded as given, the RPC provider validates it.
func (q *Querier) GetBalance(ctx context.Context, address string) (uint64, error) {
	res, err := rpcCall[rpc.GetBalanceResult](ctx, q, "getBalance", address)
	if err != nil {
		return 0, err
	}
	return res.Value, nil
}

// GetTokenAccounts returns the SPL token accounts owned by wallet, in the
// provider's jsonParsed shape.
func (q *Querier) GetTokenAccounts(ctx context.Context, wallet string) ([]json.RawMessage, error) {
	res, err := rpcCall[tokenAccountsResult](ctx, q, "getTokenAccountsByOwner",
		wallet,
		map[string]string{"programId": solana.TokenProgramID.String()},
		map[string]any{"encoding": solana.EncodingJSONParsed},
	)
	if err != nil {
		return nil, err
	}
	if res.Value == nil {
		return []json.RawMessage{}, nil
	}
	return res.Value, nil
}

func (q *Querier) GetLatestBlockhash(ctx context.Context) (string, error) {
	res, err := rpcCall[rpc.GetLatestBlockhashResult](ctx, q, "getLatestBlockhash")
	if err != nil {
		return "", err
	}
	if res.Value == nil || res.Value.Blockhash.IsZero() {
		return "", types.NewUpstreamError(types.ServiceSolanaRPC, "getLatestBlockhash returned no blockhash", nil)
	}
	return res.Value.Blockhash.String(), nil
}
