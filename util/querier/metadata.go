package querier

import (
	"context"
	"encoding/json"

	"github.com/clawpad/clawpad/types"
)

type metadataRequest struct {
	MintAccounts    []string `json:"mintAccounts"`
	IncludeOffChain bool     `json:"includeOffChain"`
}

// GetTokenMetadata returns one opaque metadata record per mint, in the order
// the metadata API produced them.
func (q *Querier) GetTokenMetadata(ctx context.Context, mints []string) ([]json.RawMessage, error) {
	payload := metadataRequest{MintAccounts: mints, IncludeOffChain: true}

	res, err := executeWithEndpointRotation(ctx, q, []string{q.MetadataUrl}, func(ctx context.Context, endpoint string) (*[]json.RawMessage, error) {
		body, err := q.post(ctx, types.ServiceMetadataAPI, "token-metadata", endpoint, payload)
		if err != nil {
			return nil, err
		}

		records, err := extractResponse[[]json.RawMessage](body)
		if err != nil {
			return nil, types.NewUpstreamError(types.ServiceMetadataAPI, "expected a JSON array", err)
		}
		return &records, nil
	})
	if err != nil {
		return nil, err
	}
	if *res == nil {
		return []json.RawMessage{}, nil
	}
	return *res, nil
}
