package querier

import (
	"context"

	"github.com/gagliardetto/solana-go"
	"github.com/shopspring/decimal"

	"github.com/clawpad/clawpad/types"
)

type priceEntry struct {
	Price decimal.NullDecimal `json:"price"`
}

type priceResponse struct {
	Data map[string]*priceEntry `json:"data"`
}

// GetSOLPrice returns the USD price of wrapped SOL. A missing or non-positive
// quote is reported as an error.
func (q *Querier) GetSOLPrice(ctx context.Context) (float64, error) {
	mint := solana.SolMint.String()

	price, err := executeWithEndpointRotation(ctx, q, []string{q.PriceUrl}, func(ctx context.Context, endpoint string) (*decimal.Decimal, error) {
		body, err := q.get(ctx, types.ServicePriceAPI, "price", endpoint, map[string]string{"ids": mint})
		if err != nil {
			return nil, err
		}

		res, err := extractResponse[priceResponse](body)
		if err != nil {
			return nil, types.NewUpstreamError(types.ServicePriceAPI, "invalid price response", err)
		}
		entry, ok := res.Data[mint]
		if !ok || entry == nil || !entry.Price.Valid {
			return nil, types.NewUpstreamError(types.ServicePriceAPI, "no price for "+mint, nil)
		}
		if !entry.Price.Decimal.IsPositive() {
			return nil, types.NewUpstreamError(types.ServicePriceAPI, "non-positive price "+entry.Price.Decimal.String(), nil)
		}
		return &entry.Price.Decimal, nil
	})
	if err != nil {
		return 0, err
	}
	return price.InexactFloat64(), nil
}
