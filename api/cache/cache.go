package cache

import (
	"sort"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cache"
)

// Config holds cache configuration
type Config struct {
	// Expiration time for the cache
	Expiration time.Duration
	// IncludeQueryParams determines if query parameters should be included in cache key
	IncludeQueryParams bool
}

// DefaultConfig returns a default cache configuration
func DefaultConfig() Config {
	return Config{
		Expiration:         time.Second,
		IncludeQueryParams: true,
	}
}

// New creates a new cache middleware with the given configuration
func New(cfg Config) fiber.Handler {
	// fiber tracks expiry in whole seconds, anything shorter never expires on time
	if cfg.Expiration < time.Second {
		cfg.Expiration = time.Second
	}

	cacheConfig := cache.Config{
		Expiration: cfg.Expiration,
	}

	if cfg.IncludeQueryParams {
		cacheConfig.KeyGenerator = Key
	}

	return cache.New(cacheConfig)
}

// WithExpiration creates a cache middleware with custom expiration time
func WithExpiration(expiration time.Duration) fiber.Handler {
	cfg := DefaultConfig()
	cfg.Expiration = expiration
	return New(cfg)
}

// Key builds a cache key from method, path and the sorted query string, so
// ?limit=10&offset=20 and ?offset=20&limit=10 share an entry.
func Key(c *fiber.Ctx) string {
	var pairs []string
	c.Context().QueryArgs().VisitAll(func(key, value []byte) {
		pairs = append(pairs, string(key)+"="+string(value))
	})

	path := strings.Clone(c.Path())
	if len(pairs) == 0 {
		return c.Method() + ":" + path
	}
	sort.Strings(pairs)
	return c.Method() + ":" + path + "?" + strings.Join(pairs, "&")
}
