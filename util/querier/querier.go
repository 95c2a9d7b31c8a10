package querier

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"

	"github.com/clawpad/clawpad/config"
	"github.com/clawpad/clawpad/sentry_integration"
	"github.com/clawpad/clawpad/util"
)

// Querier talks to the Solana JSON-RPC provider, the price API and the
// token metadata API. It is safe for concurrent use.
type Querier struct {
	client          *fiber.Client
	RpcUrls         []string
	PriceUrl        string
	MetadataUrl     string
	ApiKey          string
	Timeout         time.Duration
	MaxRetries      int
	CoolingDuration time.Duration
}

// requestFunc is a function type that performs an HTTP request with a given endpoint URL
type requestFunc[T any] func(ctx context.Context, endpointURL string) (*T, error)

// permanentError marks a failure that another attempt cannot fix,
// such as a JSON-RPC "invalid params" answer.
type permanentError struct {
	err error
}

func (e *permanentError) Error() string { return e.err.Error() }
func (e *permanentError) Unwrap() error { return e.err }

func permanent(err error) error {
	return &permanentError{err: err}
}

func NewQuerier(cfg *config.UpstreamConfig) *Querier {
	return &Querier{
		client:          fiber.AcquireClient(),
		RpcUrls:         cfg.RpcUrls,
		PriceUrl:        cfg.PriceUrl,
		MetadataUrl:     cfg.MetadataUrl,
		ApiKey:          cfg.ApiKey,
		Timeout:         cfg.Timeout,
		MaxRetries:      cfg.MaxRetries,
		CoolingDuration: cfg.CoolingDuration,
	}
}

func extractResponse[T any](response []byte) (T, error) {
	var t T
	if err := json.Unmarshal(response, &t); err != nil {
		return t, err
	}
	return t, nil
}

func (q *Querier) apiKeyParams() map[string]string {
	if q.ApiKey == "" {
		return nil
	}
	return map[string]string{"api-key": q.ApiKey}
}

// executeWithEndpointRotation runs requestFn at most 1+MaxRetries times, moving to the
// next endpoint after every failure and backing off between attempts. It starts from the
// first endpoint the health tracker considers usable.
func executeWithEndpointRotation[T any](ctx context.Context, q *Querier, endpoints []string, requestFn requestFunc[T]) (*T, error) {
	if len(endpoints) == 0 {
		return nil, fmt.Errorf("no endpoints configured")
	}

	startEndpointIndex := findHealthyEndpoint(endpoints)
	attempts := q.MaxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			backoffDelay := calculateBackoffDelay(attempt, q.CoolingDuration)
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(backoffDelay):
			}
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		endpoint := endpoints[(startEndpointIndex+attempt)%len(endpoints)]
		res, err := requestFn(ctx, endpoint)
		if err == nil {
			recordEndpointSuccess(endpoint)
			return res, nil
		}
		lastErr = err

		var perm *permanentError
		if errors.As(err, &perm) {
			// the endpoint answered, it is not the endpoint's fault
			recordEndpointSuccess(endpoint)
			return nil, perm.err
		}
		recordEndpointFailure(endpoint)
	}

	sentry_integration.CaptureCurrentHubException(lastErr, sentry.LevelWarning)
	return nil, fmt.Errorf("exhausted all retries: %w", lastErr)
}

func (q *Querier) get(ctx context.Context, service, method, url string, params map[string]string) ([]byte, error) {
	return util.Get(ctx, q.client, util.Request{
		Service: service,
		Method:  method,
		Url:     url,
		Params:  params,
		Timeout: q.Timeout,
	})
}

func (q *Querier) post(ctx context.Context, service, method, url string, payload any) ([]byte, error) {
	return util.Post(ctx, q.client, util.Request{
		Service: service,
		Method:  method,
		Url:     url,
		Params:  q.apiKeyParams(),
		Headers: map[string]string{fiber.HeaderContentType: fiber.MIMEApplicationJSON},
		Payload: payload,
		Timeout: q.Timeout,
	})
}
