package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/mod/semver"

	dbconfig "github.com/clawpad/clawpad/orm/config"
	"github.com/clawpad/clawpad/types"
)

var (
	Version    = "dev"
	CommitHash = "unknown"

	// Singleton instance
	configInstance *Config
	configOnce     sync.Once
)

// Default configuration constants
const (
	// Port settings
	DefaultAPIPort     = "8080"
	DefaultMetricsPort = "9090"
	MinPortNumber      = 1
	MaxPortNumber      = 65535

	// Upstream settings
	DefaultRpcUrl           = "https://mainnet.helius-rpc.com"
	DefaultPriceUrl         = "https://api.jup.ag/price/v2"
	DefaultMetadataUrl      = "https://api.helius.xyz/v0/token-metadata"
	DefaultFallbackSOLPrice = 150.0
	DefaultUpstreamTimeout  = 8 * time.Second
	DefaultUpstreamRetries  = 1
	DefaultCoolingDuration  = 50 * time.Millisecond
	DefaultMaxMetadataMints = 100

	MaxAllowedUpstreamRetries = 5

	// Concurrent request settings
	DefaultMaxConcurrentRequests = 50
	MaxAllowedConcurrentRequests = 1000

	// Database settings
	DefaultDBMaxConns  = 0 // 0 means unlimited (GORM default)
	DefaultDBIdleConns = 2 // GORM default
	DefaultDBBatchSize = 100

	// Leaderboard settings
	DefaultLeaderboardCacheTTL = 5 * time.Second

	// Rate limit settings
	DefaultRateLimitMax    = 120
	DefaultRateLimitWindow = time.Minute

	// Metrics settings
	DefaultMetricsPath = "/metrics"

	// Default environment
	DefaultEnvironment = "local"
)

// DefaultCORSHeaders are the request headers browsers send through the supabase-style client.
const DefaultCORSHeaders = "authorization,x-client-info,apikey,content-type,x-supabase-client-platform,x-supabase-client-platform-version,x-supabase-client-runtime,x-supabase-client-runtime-version"

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
	Port    string `json:"port"`
}

// SentryConfig contains configuration for Sentry integration
type SentryConfig struct {
	DSN                string  `json:"dsn"`
	SampleRate         float64 `json:"sample_rate"`          // General sample rate (fallback)
	TracesSampleRate   float64 `json:"traces_sample_rate"`   // Traces sample rate
	ProfilesSampleRate float64 `json:"profiles_sample_rate"` // Profiles sample rate
	Environment        string  `json:"environment"`
}

// SetBuildInfo records the ldflags build info. Semantic versions are
// canonicalized, so "1.2" is reported as "v1.2.0".
func SetBuildInfo(v, commit string) {
	if !strings.HasPrefix(v, "v") && semver.IsValid("v"+v) {
		v = "v" + v
	}
	if semver.IsValid(v) {
		v = semver.Canonical(v)
	}
	Version = v
	CommitHash = commit
}

type Config struct {
	listenPort            string
	dbConfig              *dbconfig.Config
	upstreamConfig        *UpstreamConfig
	logLevel              string
	logFormat             string
	maxConcurrentRequests int
	leaderboardCacheTTL   time.Duration
	corsConfig            *CORSConfig
	rateLimitConfig       *RateLimitConfig
	metricsConfig         *MetricsConfig
	sentryConfig          *SentryConfig
	environment           string
}

func setDefaults() {
	viper.SetDefault("PORT", DefaultAPIPort)
	viper.SetDefault("LOG_LEVEL", "warn")
	viper.SetDefault("LOG_FORMAT", "json")

	viper.SetDefault("RPC_URLS", DefaultRpcUrl)
	viper.SetDefault("PRICE_API_URL", DefaultPriceUrl)
	viper.SetDefault("METADATA_API_URL", DefaultMetadataUrl)
	viper.SetDefault("FALLBACK_SOL_PRICE", DefaultFallbackSOLPrice)
	viper.SetDefault("UPSTREAM_TIMEOUT", DefaultUpstreamTimeout)
	viper.SetDefault("UPSTREAM_MAX_RETRIES", DefaultUpstreamRetries)
	viper.SetDefault("COOLING_DURATION", DefaultCoolingDuration)
	viper.SetDefault("MAX_METADATA_MINTS", DefaultMaxMetadataMints)
	viper.SetDefault("MAX_CONCURRENT_REQUESTS", DefaultMaxConcurrentRequests)

	viper.SetDefault("DB_AUTO_MIGRATE", false)
	viper.SetDefault("DB_BATCH_SIZE", DefaultDBBatchSize)
	viper.SetDefault("DB_MAX_CONNS", DefaultDBMaxConns)
	viper.SetDefault("DB_IDLE_CONNS", DefaultDBIdleConns)
	viper.SetDefault("DB_MIGRATION_DIR", "") // empty: use the migrations embedded in the binary
	viper.SetDefault("LEADERBOARD_CACHE_TTL", DefaultLeaderboardCacheTTL)

	viper.SetDefault("CORS_ENABLED", true)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("CORS_ALLOW_METHODS", "GET,POST,OPTIONS")
	viper.SetDefault("CORS_ALLOW_HEADERS", DefaultCORSHeaders)
	viper.SetDefault("CORS_ALLOW_CREDENTIALS", false)
	viper.SetDefault("CORS_EXPOSE_HEADERS", "")
	viper.SetDefault("CORS_MAX_AGE", 0)

	viper.SetDefault("RATE_LIMIT_ENABLED", false)
	viper.SetDefault("RATE_LIMIT_MAX", DefaultRateLimitMax)
	viper.SetDefault("RATE_LIMIT_WINDOW", DefaultRateLimitWindow)

	viper.SetDefault("METRICS_ENABLED", false)
	viper.SetDefault("METRICS_PATH", DefaultMetricsPath)
	viper.SetDefault("METRICS_PORT", DefaultMetricsPort)
	viper.SetDefault("ENVIRONMENT", DefaultEnvironment)

	// Sentry defaults
	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("SENTRY_SAMPLE_RATE", 0.01)
	viper.SetDefault("SENTRY_TRACES_SAMPLE_RATE", 0.01)
	viper.SetDefault("SENTRY_PROFILES_SAMPLE_RATE", 0.01)

	// HELIUS_API_KEY and DB_DSN have no defaults
}

func GetConfig() (*Config, error) {
	var err error

	configOnce.Do(func() {
		configInstance, err = loadConfig()
	})

	return configInstance, err
}

func loadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// just log without panic, local testing purpose only
		fmt.Fprintln(os.Stderr, "No .env file found")
	}
	viper.AutomaticEnv()
	setDefaults()

	config := &Config{
		listenPort: viper.GetString("PORT"),
		dbConfig: &dbconfig.Config{
			DSN:          viper.GetString("DB_DSN"),
			AutoMigrate:  viper.GetBool("DB_AUTO_MIGRATE"),
			MaxConns:     viper.GetInt("DB_MAX_CONNS"),
			IdleConns:    viper.GetInt("DB_IDLE_CONNS"),
			BatchSize:    viper.GetInt("DB_BATCH_SIZE"),
			MigrationDir: viper.GetString("DB_MIGRATION_DIR"),
		},
		upstreamConfig: &UpstreamConfig{
			ApiKey:           viper.GetString("HELIUS_API_KEY"),
			RpcUrls:          splitList(viper.GetString("RPC_URLS")),
			PriceUrl:         viper.GetString("PRICE_API_URL"),
			MetadataUrl:      viper.GetString("METADATA_API_URL"),
			FallbackSOLPrice: viper.GetFloat64("FALLBACK_SOL_PRICE"),
			Timeout:          viper.GetDuration("UPSTREAM_TIMEOUT"),
			MaxRetries:       viper.GetInt("UPSTREAM_MAX_RETRIES"),
			CoolingDuration:  viper.GetDuration("COOLING_DURATION"),
			MaxMetadataMints: viper.GetInt("MAX_METADATA_MINTS"),
		},
		logLevel:              viper.GetString("LOG_LEVEL"),
		logFormat:             viper.GetString("LOG_FORMAT"),
		maxConcurrentRequests: viper.GetInt("MAX_CONCURRENT_REQUESTS"),
		leaderboardCacheTTL:   viper.GetDuration("LEADERBOARD_CACHE_TTL"),
		corsConfig: &CORSConfig{
			Enabled:          viper.GetBool("CORS_ENABLED"),
			AllowOrigin:      splitList(viper.GetString("CORS_ALLOW_ORIGINS")),
			AllowMethods:     splitList(viper.GetString("CORS_ALLOW_METHODS")),
			AllowHeaders:     splitList(viper.GetString("CORS_ALLOW_HEADERS")),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			ExposeHeaders:    splitList(viper.GetString("CORS_EXPOSE_HEADERS")),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
		rateLimitConfig: &RateLimitConfig{
			Enabled: viper.GetBool("RATE_LIMIT_ENABLED"),
			Max:     viper.GetInt("RATE_LIMIT_MAX"),
			Window:  viper.GetDuration("RATE_LIMIT_WINDOW"),
		},
		metricsConfig: &MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Path:    viper.GetString("METRICS_PATH"),
			Port:    viper.GetString("METRICS_PORT"),
		},
		sentryConfig: &SentryConfig{
			DSN:                viper.GetString("SENTRY_DSN"),
			SampleRate:         viper.GetFloat64("SENTRY_SAMPLE_RATE"),
			TracesSampleRate:   viper.GetFloat64("SENTRY_TRACES_SAMPLE_RATE"),
			ProfilesSampleRate: viper.GetFloat64("SENTRY_PROFILES_SAMPLE_RATE"),
			Environment:        viper.GetString("ENVIRONMENT"),
		},
		environment: viper.GetString("ENVIRONMENT"),
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (c Config) GetListenPort() string {
	return c.listenPort
}

// SetListenPort assigns the listen port for testing purposes.
func (c *Config) SetListenPort(port string) {
	c.listenPort = port
}

// SetDBConfig assigns the DB config for testing purposes.
func (c *Config) SetDBConfig(dbCfg *dbconfig.Config) {
	c.dbConfig = dbCfg
}

func (c Config) GetDBConfig() *dbconfig.Config {
	return c.dbConfig
}

// LeaderboardEnabled reports whether a database is configured.
func (c Config) LeaderboardEnabled() bool {
	return c.dbConfig != nil && c.dbConfig.DSN != ""
}

// SetUpstreamConfig assigns the upstream config for testing purposes.
func (c *Config) SetUpstreamConfig(upstreamCfg *UpstreamConfig) {
	c.upstreamConfig = upstreamCfg
}

func (c Config) GetUpstreamConfig() *UpstreamConfig {
	return c.upstreamConfig
}

func (c Config) GetFallbackSOLPrice() float64 {
	if c.upstreamConfig == nil {
		return DefaultFallbackSOLPrice
	}
	return c.upstreamConfig.FallbackSOLPrice
}

func (c Config) GetMaxMetadataMints() int {
	if c.upstreamConfig == nil || c.upstreamConfig.MaxMetadataMints < 1 {
		return DefaultMaxMetadataMints
	}
	return c.upstreamConfig.MaxMetadataMints
}

// SetCORSConfig assigns the CORS config for testing purposes.
func (c *Config) SetCORSConfig(corsCfg *CORSConfig) {
	c.corsConfig = corsCfg
}

func (c Config) GetCORSConfig() *CORSConfig {
	return c.corsConfig
}

// SetRateLimitConfig assigns the rate limit config for testing purposes.
func (c *Config) SetRateLimitConfig(rateLimitCfg *RateLimitConfig) {
	c.rateLimitConfig = rateLimitCfg
}

func (c Config) GetRateLimitConfig() *RateLimitConfig {
	return c.rateLimitConfig
}

func (c Config) GetLeaderboardCacheTTL() time.Duration {
	if c.leaderboardCacheTTL <= 0 {
		return DefaultLeaderboardCacheTTL
	}
	return c.leaderboardCacheTTL
}

func (c Config) GetSentryConfig() *SentryConfig {
	if c.sentryConfig == nil || c.sentryConfig.DSN == "" {
		return nil
	}
	return c.sentryConfig
}

func (c Config) GetEnvironment() string {
	return c.environment
}

func (c Config) GetLogLevel() slog.Level {
	switch c.logLevel {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

func (c Config) GetLogFormat() string {
	if c.logFormat == "json" {
		return "json"
	}
	return "plain"
}

func (c Config) GetMaxConcurrentRequests() int {
	if c.maxConcurrentRequests < 1 {
		return DefaultMaxConcurrentRequests
	}
	return c.maxConcurrentRequests
}

func (c Config) GetMetricsConfig() *MetricsConfig {
	return c.metricsConfig
}

func (c Config) Validate() error {
	if err := c.validatePort(); err != nil {
		return err
	}
	if err := c.validateLogSettings(); err != nil {
		return err
	}
	if err := c.validateNumericSettings(); err != nil {
		return err
	}
	if err := c.validateRateLimitConfig(); err != nil {
		return err
	}
	if err := c.validateMetricsConfig(); err != nil {
		return err
	}
	if err := c.validateSubConfigs(); err != nil {
		return err
	}
	return nil
}

// validatePort validates the listen port configuration
func (c Config) validatePort() error {
	if len(c.listenPort) == 0 {
		return types.NewValidationError("PORT", "required field is missing")
	}
	if port, err := strconv.Atoi(c.listenPort); err != nil || port < MinPortNumber || port > MaxPortNumber {
		return types.NewValidationError("PORT", fmt.Sprintf("must be a valid port number (%d-%d)", MinPortNumber, MaxPortNumber))
	}
	return nil
}

// validateLogSettings validates log format and level configuration
func (c Config) validateLogSettings() error {
	switch c.logFormat {
	case "json", "plain":
		break
	default:
		return types.NewValidationError("LOG_FORMAT", fmt.Sprintf("invalid value '%s', must be 'json' or 'plain'", c.logFormat))
	}

	switch c.logLevel {
	case "debug", "info", "warn", "error":
		break
	default:
		return types.NewValidationError("LOG_LEVEL", fmt.Sprintf("invalid value '%s', must be one of: debug, info, warn, error", c.logLevel))
	}
	return nil
}

func (c Config) validateNumericSettings() error {
	if c.maxConcurrentRequests < 1 {
		return types.NewValidationError("MAX_CONCURRENT_REQUESTS", "must be at least 1")
	}
	if c.maxConcurrentRequests > MaxAllowedConcurrentRequests {
		return types.NewInvalidValueError("MAX_CONCURRENT_REQUESTS", fmt.Sprintf("%d", c.maxConcurrentRequests), fmt.Sprintf("must not exceed %d", MaxAllowedConcurrentRequests))
	}
	if c.leaderboardCacheTTL < 0 {
		return types.NewValidationError("LEADERBOARD_CACHE_TTL", "must be non-negative")
	}
	return nil
}

func (c Config) validateRateLimitConfig() error {
	if c.rateLimitConfig == nil || !c.rateLimitConfig.Enabled {
		return nil
	}
	if c.rateLimitConfig.Max < 1 {
		return types.NewValidationError("RATE_LIMIT_MAX", "must be at least 1 when RATE_LIMIT_ENABLED is set")
	}
	if c.rateLimitConfig.Window <= 0 {
		return types.NewValidationError("RATE_LIMIT_WINDOW", "must be positive when RATE_LIMIT_ENABLED is set")
	}
	return nil
}

// validateMetricsConfig validates metrics configuration
func (c Config) validateMetricsConfig() error {
	if c.metricsConfig == nil || !c.metricsConfig.Enabled {
		return nil
	}
	if port, err := strconv.Atoi(c.metricsConfig.Port); err != nil || port < MinPortNumber || port > MaxPortNumber {
		return types.NewValidationError("METRICS_PORT", fmt.Sprintf("must be a valid port number (%d-%d)", MinPortNumber, MaxPortNumber))
	}
	if c.metricsConfig.Port == c.listenPort {
		return types.NewValidationError("METRICS_PORT", fmt.Sprintf("metrics port %s conflicts with API port", c.metricsConfig.Port))
	}
	if c.metricsConfig.Path == "" || c.metricsConfig.Path[0] != '/' {
		return types.NewValidationError("METRICS_PATH", "must start with '/'")
	}
	return nil
}

// validateSubConfigs validates nested configuration objects
func (c Config) validateSubConfigs() error {
	if c.upstreamConfig == nil {
		return types.NewConfigError("upstream config is missing", nil)
	}
	if err := c.upstreamConfig.Validate(); err != nil {
		return err
	}
	// the database is optional; only the leaderboard needs it
	if c.LeaderboardEnabled() {
		if err := c.dbConfig.Validate(); err != nil {
			return err
		}
	}
	return nil
}
