package api

import (
	"log/slog"
	"net/url"
	"slices"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/clawpad/clawpad/config"
)

// addCORS installs the cors middleware and answers every OPTIONS request
// with an empty 200, whether or not CORS is enabled. With a wildcard origin
// the permissive headers go on every response, Origin header or not.
func addCORS(app *fiber.App, cfg *config.Config, logger *slog.Logger) {
	if corsCfg := cfg.GetCORSConfig(); corsCfg != nil && corsCfg.Enabled {
		handler := cors.New(newCORSConfig(corsCfg, logger))
		wildcard := allowsAllOrigins(corsCfg)
		allowMethods := strings.Join(corsCfg.AllowMethods, ",")
		allowHeaders := strings.Join(corsCfg.AllowHeaders, ",")
		app.Use(func(c *fiber.Ctx) error {
			if wildcard {
				// fiber's cors skips requests without Origin or Access-Control-Request-Method
				c.Set(fiber.HeaderAccessControlAllowOrigin, "*")
				if allowMethods != "" {
					c.Set(fiber.HeaderAccessControlAllowMethods, allowMethods)
				}
				if allowHeaders != "" {
					c.Set(fiber.HeaderAccessControlAllowHeaders, allowHeaders)
				}
			}
			err := handler(c)
			if c.Method() == fiber.MethodOptions && c.Response().StatusCode() == fiber.StatusNoContent {
				c.Status(fiber.StatusOK)
				c.Response().ResetBody()
			}
			return err
		})
	}

	app.Use(func(c *fiber.Ctx) error {
		if c.Method() != fiber.MethodOptions {
			return c.Next()
		}
		c.Status(fiber.StatusOK)
		return nil
	})
}

func newCORSConfig(corsCfg *config.CORSConfig, logger *slog.Logger) cors.Config {
	cc := cors.Config{
		AllowMethods:     strings.Join(corsCfg.AllowMethods, ","),
		AllowHeaders:     strings.Join(corsCfg.AllowHeaders, ","),
		ExposeHeaders:    strings.Join(corsCfg.ExposeHeaders, ","),
		AllowCredentials: corsCfg.AllowCredentials,
		MaxAge:           corsCfg.MaxAge,
	}

	if allowsAllOrigins(corsCfg) {
		// browsers reject credentials with a wildcard origin and fiber panics on it
		if cc.AllowCredentials {
			logger.Warn("CORS credentials disabled because all origins are allowed")
			cc.AllowCredentials = false
		}
		cc.AllowOrigins = "*"
		return cc
	}

	matchers := make([]originMatcher, 0, len(corsCfg.AllowOrigin))
	for _, origin := range corsCfg.AllowOrigin {
		matchers = append(matchers, newOriginMatcher(origin))
	}
	cc.AllowOriginsFunc = func(origin string) bool {
		for _, m := range matchers {
			if m.match(origin) {
				return true
			}
		}
		return false
	}
	logger.Debug("CORS origins configured", slog.Any("origins", corsCfg.AllowOrigin))
	return cc
}

func allowsAllOrigins(corsCfg *config.CORSConfig) bool {
	return len(corsCfg.AllowOrigin) == 0 || slices.Contains(corsCfg.AllowOrigin, "*")
}

// originMatcher matches an Origin header against an exact origin like
// https://example.com or a subdomain pattern like *.example.com.
type originMatcher struct {
	exact  string
	scheme string
	suffix string
}

func newOriginMatcher(pattern string) originMatcher {
	pattern = strings.ToLower(strings.TrimSpace(pattern))

	scheme := ""
	host := pattern
	if i := strings.Index(pattern, "://"); i != -1 {
		scheme, host = pattern[:i], pattern[i+3:]
	}
	if strings.HasPrefix(host, "*.") {
		return originMatcher{scheme: scheme, suffix: host[1:]}
	}
	return originMatcher{exact: strings.TrimSuffix(pattern, "/")}
}

func (m originMatcher) match(origin string) bool {
	origin = strings.ToLower(origin)
	if m.exact != "" {
		return origin == m.exact
	}

	u, err := url.Parse(origin)
	if err != nil || u.Host == "" {
		return false
	}
	if m.scheme != "" && u.Scheme != m.scheme {
		return false
	}
	return strings.HasSuffix(u.Host, m.suffix)
}
