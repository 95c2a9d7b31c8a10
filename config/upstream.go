package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/clawpad/clawpad/types"
)

// UpstreamConfig describes the third-party services the data proxy forwards to.
type UpstreamConfig struct {
	ApiKey           string
	RpcUrls          []string
	PriceUrl         string
	MetadataUrl      string
	FallbackSOLPrice float64
	Timeout          time.Duration
	MaxRetries       int
	CoolingDuration  time.Duration
	MaxMetadataMints int
}

func (uc UpstreamConfig) Validate() error {
	if len(uc.RpcUrls) == 0 {
		return types.NewValidationError("RPC_URLS", "required field is missing")
	}
	for _, rpcUrl := range uc.RpcUrls {
		if err := validateHTTPURL("RPC_URLS", rpcUrl); err != nil {
			return err
		}
	}
	if err := validateHTTPURL("PRICE_API_URL", uc.PriceUrl); err != nil {
		return err
	}
	if err := validateHTTPURL("METADATA_API_URL", uc.MetadataUrl); err != nil {
		return err
	}

	if uc.FallbackSOLPrice <= 0 {
		return types.NewValidationError("FALLBACK_SOL_PRICE", "must be positive")
	}
	if uc.Timeout <= 0 {
		return types.NewValidationError("UPSTREAM_TIMEOUT", "must be positive")
	}
	if uc.MaxRetries < 0 || uc.MaxRetries > MaxAllowedUpstreamRetries {
		return types.NewInvalidValueError("UPSTREAM_MAX_RETRIES", fmt.Sprintf("%d", uc.MaxRetries), fmt.Sprintf("must be between 0 and %d", MaxAllowedUpstreamRetries))
	}
	if uc.CoolingDuration < 0 {
		return types.NewValidationError("COOLING_DURATION", "must be non-negative")
	}
	if uc.MaxMetadataMints < 1 {
		return types.NewValidationError("MAX_METADATA_MINTS", "must be at least 1")
	}

	// HELIUS_API_KEY is not validated: a missing key surfaces as upstream failures
	return nil
}

func validateHTTPURL(field, raw string) error {
	if len(raw) == 0 {
		return types.NewValidationError(field, "required field is missing")
	}
	u, err := url.Parse(raw)
	if err != nil {
		return types.NewInvalidValueError(field, raw, fmt.Sprintf("invalid URL: %v", err))
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return types.NewInvalidValueError(field, raw, fmt.Sprintf("must use http or https scheme, got: %s", u.Scheme))
	}
	return nil
}
