package common

import (
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/clawpad/clawpad/types"
)

func TestToErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantError  string
		hasDetails bool
	}{
		{name: "fiber error", err: fiber.NewError(fiber.StatusMethodNotAllowed, "nope"), wantStatus: 405, wantError: "nope"},
		{name: "missing param", err: types.NewMissingParamError("address"), wantStatus: 400, wantError: "address parameter required"},
		{name: "validation", err: types.NewValidationError("mints", "too many"), wantStatus: 400, wantError: "validation failed for mints: too many"},
		{name: "not found", err: types.NewNotFoundError("agent x"), wantStatus: 404, wantError: "agent x not found"},
		{name: "database", err: types.NewDatabaseError("list agents", errors.New("boom")), wantStatus: 500, wantError: "internal server error", hasDetails: true},
		{name: "plain", err: errors.New("kaput"), wantStatus: 500, wantError: "internal server error", hasDetails: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			status, res := ToErrorResponse(tc.err)
			require.Equal(t, tc.wantStatus, status)
			require.Equal(t, tc.wantError, res.Error)
			if tc.hasDetails {
				require.NotNil(t, res.Details)
			} else {
				require.Nil(t, res.Details)
			}
		})
	}
}
