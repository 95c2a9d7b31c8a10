package solana

import "encoding/json"

type PriceResponse struct {
	Price float64 `json:"price"`
}

type TokenMetadataResponse struct {
	Metadata []json.RawMessage `json:"metadata" swaggertype:"array,object"`
}

type BalanceResponse struct {
	Balance float64 `json:"balance"`
	Address string  `json:"address"`
}

type TokenAccountsResponse struct {
	Accounts []json.RawMessage `json:"accounts" swaggertype:"array,object"`
}

type BlockhashResponse struct {
	Blockhash *string `json:"blockhash"`
}

type HealthResponse struct {
	Status       string  `json:"status"`
	RpcConnected bool    `json:"rpcConnected"`
	SolPrice     float64 `json:"solPrice"`
	Timestamp    string  `json:"timestamp"`
}

// UnknownActionResponse is answered with HTTP 200.
type UnknownActionResponse struct {
	Error string `json:"error"`
}

// ActionRequest is the JSON body accepted by the proxy. Query string
// values take precedence over the body.
type ActionRequest struct {
	Action string            `json:"action"`
	Params map[string]string `json:"params"`
	Mints  []string          `json:"mints"`
}

// param returns a trimmed parameter value
func (r *ActionRequest) param(key string) string {
	if r.Params == nil {
		return ""
	}
	return r.Params[key]
}
