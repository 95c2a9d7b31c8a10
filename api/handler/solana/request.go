package solana

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/clawpad/clawpad/types"
)

// parseRequest merges the optional JSON envelope with the query string.
func parseRequest(c *fiber.Ctx) (*ActionRequest, error) {
	req := &ActionRequest{}

	if body := bytes.TrimSpace(c.Body()); len(body) > 0 {
		if err := json.Unmarshal(body, req); err != nil {
			return nil, types.NewBadRequestError("invalid JSON body: " + err.Error())
		}
	}
	if req.Params == nil {
		req.Params = make(map[string]string)
	}

	var queryMints []string
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		switch k := string(key); k {
		case "action":
			req.Action = string(value)
		case "mints":
			for _, mint := range strings.Split(string(value), ",") {
				if mint = strings.TrimSpace(mint); mint != "" {
					queryMints = append(queryMints, mint)
				}
			}
		default:
			req.Params[k] = string(value)
		}
	})
	if queryMints != nil {
		req.Mints = queryMints
	}

	for key, value := range req.Params {
		req.Params[key] = strings.TrimSpace(value)
	}
	req.Action = strings.TrimSpace(req.Action)

	// a bare {"mints": [...]} body is a metadata lookup
	if req.Action == "" && req.Mints != nil {
		req.Action = string(ActionTokenMetadata)
	}

	return req, nil
}
