package api

import (
	"log/slog"
	"runtime/debug"
	"strconv"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/clawpad/clawpad/api/handler/common"
	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/metrics"
)

type RateLimitResponse struct {
	Error      string `json:"error"`
	RetryAfter int    `json:"retryAfter"`
}

// recoverMiddleware turns a panic into an error for common.ErrorHandler.
func recoverMiddleware(logger *slog.Logger) fiber.Handler {
	return recover.New(recover.Config{
		EnableStackTrace: true,
		StackTraceHandler: func(c *fiber.Ctx, e any) {
			metrics.TrackPanic("api")
			logger.Error("panic recovered",
				slog.String("method", c.Method()),
				slog.String("path", c.Path()),
				slog.Any("panic", e),
				slog.String("stack", string(debug.Stack())))
		},
	})
}

func metricsMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		httpMetrics := metrics.GetMetrics().HTTP
		httpMetrics.RequestsInFlight.Inc()
		defer httpMetrics.RequestsInFlight.Dec()

		start := time.Now()
		method := c.Method()
		path := strings.Clone(c.Path())

		err := c.Next()

		// the error handler runs after the whole chain, so derive the status here
		status := c.Response().StatusCode()
		if err != nil {
			status, _ = common.ToErrorResponse(err)
		}

		elapsed := time.Since(start).Seconds()
		handler := metrics.GetHandlerPattern(path)
		httpMetrics.RequestsTotal.WithLabelValues(method, handler, metrics.GetStatusClass(status)).Inc()
		httpMetrics.RequestDuration.WithLabelValues(method, handler).Observe(elapsed)
		if bucket := metrics.GetDurationBucket(elapsed); bucket != "" {
			httpMetrics.SlowRequests.WithLabelValues(method, path, bucket).Inc()
		}

		return err
	}
}

// addRateLimit limits requests per client IP. Preflights and the liveness
// probe are never limited.
func addRateLimit(app *fiber.App, cfg *config.Config, logger *slog.Logger) {
	rl := cfg.GetRateLimitConfig()
	if rl == nil || !rl.Enabled {
		return
	}

	logger.Info("rate limiting enabled", slog.Int("max", rl.Max), slog.Duration("window", rl.Window))
	app.Use(limiter.New(limiter.Config{
		Max:        rl.Max,
		Expiration: rl.Window,
		Next: func(c *fiber.Ctx) bool {
			return c.Method() == fiber.MethodOptions || c.Path() == "/health"
		},
		LimitReached: func(c *fiber.Ctx) error {
			retryAfter, _ := strconv.Atoi(c.GetRespHeader(fiber.HeaderRetryAfter))
			metrics.TrackError("api", "rate_limited")
			return c.Status(fiber.StatusTooManyRequests).JSON(RateLimitResponse{
				Error:      "rate limit exceeded",
				RetryAfter: retryAfter,
			})
		},
	}))
}
