package solana

import "strings"

// Action is one of the operations the data proxy can perform.
type Action string

const (
	ActionSOLPrice      Action = "sol-price"
	ActionTokenMetadata Action = "token-metadata"
	ActionBalance       Action = "balance"
	ActionTokenAccounts Action = "token-accounts"
	ActionBlockhash     Action = "blockhash"
	ActionHealth        Action = "health"
)

// Actions lists every supported action in the order they are advertised.
var Actions = []Action{
	ActionSOLPrice,
	ActionTokenMetadata,
	ActionBalance,
	ActionTokenAccounts,
	ActionBlockhash,
	ActionHealth,
}

// UnknownActionMessage is the error returned for an unrecognised action; it names every supported one.
var UnknownActionMessage = func() string {
	names := make([]string, len(Actions))
	for i, action := range Actions {
		names[i] = string(action)
	}
	return "Unknown action. Available: " + strings.Join(names, ", ")
}()

// ParseAction reports whether raw names a supported action. Matching is exact.
func ParseAction(raw string) (Action, bool) {
	for _, action := range Actions {
		if string(action) == raw {
			return action, true
		}
	}
	return "", false
}
