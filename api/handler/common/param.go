package common

import (
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

func GetParams(c *fiber.Ctx, key string) (string, error) {
	value := strings.TrimSpace(c.Params(key))
	if value == "" {
		return "", fmt.Errorf("missing parameter: %s", key)
	}
	return value, nil
}

// GetUUIDParam parses a path parameter holding a row id.
func GetUUIDParam(c *fiber.Ctx, key string) (uuid.UUID, error) {
	value, err := GetParams(c, key)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := uuid.Parse(value)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid %s: %s", key, value)
	}
	return id, nil
}
