package util

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/semaphore"

	"github.com/clawpad/clawpad/metrics"
	"github.com/clawpad/clawpad/types"
)

var limiter *semaphore.Weighted

// InitLimiter caps the number of outbound requests in flight across the process.
func InitLimiter(maxConcurrent int) {
	limiter = semaphore.NewWeighted(int64(maxConcurrent))
}

// Request describes a single outbound call. Method is only used as a metric label.
type Request struct {
	Service string
	Method  string
	Url     string
	Params  map[string]string
	Headers map[string]string
	Payload any
	Timeout time.Duration
}

func Get(ctx context.Context, client *fiber.Client, req Request) ([]byte, error) {
	return do(ctx, client, fiber.MethodGet, req)
}

func Post(ctx context.Context, client *fiber.Client, req Request) ([]byte, error) {
	return do(ctx, client, fiber.MethodPost, req)
}

// IsRateLimited reports whether err came from a 429 answer.
func IsRateLimited(err error) bool {
	return errors.Is(err, fiber.ErrTooManyRequests)
}

func do(ctx context.Context, client *fiber.Client, httpMethod string, req Request) (body []byte, err error) {
	if limiter == nil {
		return nil, types.NewLimiterNotInitializedError()
	}

	start := time.Now()
	metrics.UpstreamRequestsActive().Inc()
	defer func() {
		metrics.UpstreamRequestsActive().Dec()
		metrics.UpstreamLatency().WithLabelValues(req.Service, req.Method).Observe(time.Since(start).Seconds())
	}()

	semaphoreStart := time.Now()
	if err := limiter.Acquire(ctx, 1); err != nil {
		return nil, fmt.Errorf("failed to acquire semaphore: %w", err)
	}
	defer limiter.Release(1)
	metrics.SemaphoreWaitDuration().Observe(time.Since(semaphoreStart).Seconds())

	parsedUrl, err := url.Parse(req.Url)
	if err != nil {
		return nil, err
	}
	if len(req.Params) > 0 {
		query := parsedUrl.Query()
		for key, value := range req.Params {
			query.Set(key, value)
		}
		parsedUrl.RawQuery = query.Encode()
	}

	var agent *fiber.Agent
	switch httpMethod {
	case fiber.MethodPost:
		agent = client.Post(parsedUrl.String())
		if req.Payload != nil {
			agent = agent.JSON(req.Payload)
		}
	default:
		agent = client.Get(parsedUrl.String())
	}
	for key, value := range req.Headers {
		agent.Set(key, value)
	}

	timeout := req.Timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout || timeout <= 0 {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		return nil, types.NewTimeoutError(req.Service + " " + req.Method)
	}

	// the api key travels in the query string, keep it out of errors and labels
	redacted := parsedUrl.Scheme + "://" + parsedUrl.Host + parsedUrl.Path

	code, body, errs := agent.Timeout(timeout).Bytes()
	if err := errors.Join(errs...); err != nil {
		metrics.UpstreamRequestsTotal().WithLabelValues(req.Service, req.Method, "error").Inc()
		return nil, types.NewNetworkError(redacted, err)
	}

	metrics.UpstreamRequestsTotal().WithLabelValues(req.Service, req.Method, strconv.Itoa(code)).Inc()

	if code == fiber.StatusOK {
		return body, nil
	}

	if code == fiber.StatusTooManyRequests {
		metrics.RateLimitHitsTotal().WithLabelValues(req.Service).Inc()
		return nil, errors.Join(fiber.ErrTooManyRequests, types.NewRateLimitError(redacted))
	}

	return nil, types.NewUpstreamError(req.Service, fmt.Sprintf("http response: %d, body: %s", code, truncate(body, 256)), nil)
}

func truncate(body []byte, n int) string {
	if len(body) <= n {
		return string(body)
	}
	return string(body[:n]) + "..."
}
