package common

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

func TestParsePagination(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		wantLimit  int
		wantOffset int
		wantErr    string
	}{
		{name: "defaults", query: "", wantLimit: DefaultLimit, wantOffset: DefaultOffset},
		{name: "explicit", query: "?limit=25&offset=50", wantLimit: 25, wantOffset: 50},
		{name: "max limit", query: "?limit=1000", wantLimit: MaxLimit},
		{name: "zero limit", query: "?limit=0", wantErr: "limit must be between"},
		{name: "limit too large", query: "?limit=1001", wantErr: "limit must be between"},
		{name: "negative offset", query: "?offset=-1", wantErr: "offset cannot be negative"},
		{name: "non numeric", query: "?limit=ten", wantErr: "limit must be an integer"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				p, err := ParsePagination(c)
				if tc.wantErr != "" {
					require.ErrorContains(t, err, tc.wantErr)
					return c.SendStatus(fiber.StatusBadRequest)
				}
				require.NoError(t, err)
				require.Equal(t, tc.wantLimit, p.Limit)
				require.Equal(t, tc.wantOffset, p.Offset)
				return c.SendStatus(fiber.StatusOK)
			})

			resp, err := app.Test(httptest.NewRequest("GET", "/"+tc.query, nil))
			require.NoError(t, err)
			if tc.wantErr != "" {
				require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
			} else {
				require.Equal(t, fiber.StatusOK, resp.StatusCode)
			}
		})
	}
}

func TestGetUUIDParam(t *testing.T) {
	id := uuid.New()

	app := fiber.New()
	app.Get("/agents/:agent_id", func(c *fiber.Ctx) error {
		parsed, err := GetUUIDParam(c, "agent_id")
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		return c.SendString(parsed.String())
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/agents/"+id.String(), nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/agents/not-a-uuid", nil))
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
