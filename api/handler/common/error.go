package common

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/clawpad/clawpad/metrics"
	"github.com/clawpad/clawpad/types"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// ErrorHandler renders every error returned by a handler as {"error": ..., "details": ...}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	status, res := ToErrorResponse(err)

	metrics.GetMetrics().HTTP.ErrorsTotal.
		WithLabelValues(metrics.GetHandlerPattern(c.Path()), strconv.Itoa(status)).
		Inc()

	return c.Status(status).JSON(res)
}

// ToErrorResponse maps an error to its HTTP status and body. Client errors carry
// only their message, anything else is an internal error.
func ToErrorResponse(err error) (int, ErrorResponse) {
	var fe *fiber.Error
	if errors.As(err, &fe) {
		return fe.Code, ErrorResponse{Error: fe.Message}
	}

	var se *types.StandardError
	if errors.As(err, &se) {
		switch se.Type {
		case types.ErrTypeBadRequest, types.ErrTypeValidation, types.ErrTypeInvalidValue:
			return fiber.StatusBadRequest, ErrorResponse{Error: se.Message}
		case types.ErrTypeNotFound:
			return fiber.StatusNotFound, ErrorResponse{Error: se.Message}
		case types.ErrTypeRateLimit:
			return fiber.StatusTooManyRequests, ErrorResponse{Error: se.Message}
		case types.ErrTypeTimeout:
			return fiber.StatusGatewayTimeout, ErrorResponse{Error: se.Message}
		}
	}

	return fiber.StatusInternalServerError, ErrorResponse{
		Error:   "internal server error",
		Details: err.Error(),
	}
}
