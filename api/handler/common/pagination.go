package common

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

const (
	DefaultLimit  = 100
	MaxLimit      = 1000
	DefaultOffset = 0
)

type Pagination struct {
	Limit  int
	Offset int
}

func ParsePagination(c *fiber.Ctx) (*Pagination, error) {
	limit, err := queryInt(c, "limit", DefaultLimit)
	if err != nil {
		return nil, err
	}
	if limit < 1 || limit > MaxLimit {
		return nil, fmt.Errorf("limit must be between 1 and %d", MaxLimit)
	}

	offset, err := queryInt(c, "offset", DefaultOffset)
	if err != nil {
		return nil, err
	}
	if offset < 0 {
		return nil, errors.New("offset cannot be negative")
	}

	return &Pagination{Limit: limit, Offset: offset}, nil
}

// Apply adds LIMIT/OFFSET to the query
func (p *Pagination) Apply(query *gorm.DB) *gorm.DB {
	return query.Limit(p.Limit).Offset(p.Offset)
}

// queryInt differs from fiber's QueryInt in that a malformed value is an error, not the default.
func queryInt(c *fiber.Ctx, key string, defaultValue int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return value, nil
}
