package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/alphalions/gallery/types"
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

	// Upstream NFT API settings
	DefaultNftApiUrl       = "http://api.alphalions.io/api/nfts"
	DefaultContractAddress = "0x8420B95bEac664b6E8E89978C3fDCaA1A71c8350"
	DefaultFetchLimit      = 1000
	MaxFetchLimit          = 1000
	DefaultQueryTimeout    = 0 // 0 means no timeout

	// Concurrent request settings
	DefaultMaxConcurrentRequests = 50
	MaxAllowedConcurrentRequests = 1000
	DefaultUpstreamRateLimit     = 0 // requests per second, 0 disables

	// Gallery settings
	DefaultPageSize         = 12
	DefaultAssetDir         = "assets"
	DefaultSessionCacheSize = 1000
	DefaultSessionTTL       = 30 * time.Minute

	// Metrics settings
	DefaultMetricsPath = "/metrics"

	// Default environment
	DefaultEnvironment = "local"
)

type MetricsConfig struct {
	Enabled bool   `json:"enabled"`
	Path    string `json:"path"`
	Port    string `json:"port"`
}

// CORSConfig controls cross-origin access to the API. Origins may be exact
// ("https://gallery.example") or subdomain patterns ("*.alphalions.io").
type CORSConfig struct {
	Enabled          bool     `json:"enabled"`
	AllowOrigins     []string `json:"allow_origins"`
	AllowCredentials bool     `json:"allow_credentials"`
	MaxAge           int      `json:"max_age"`
}

// UpstreamConfig describes the remote NFT API.
type UpstreamConfig struct {
	NftApiUrl             string        `json:"nft_api_url"`
	ContractAddress       string        `json:"contract_address"`
	FetchLimit            int           `json:"fetch_limit"`
	QueryTimeout          time.Duration `json:"query_timeout"`
	MaxConcurrentRequests int           `json:"max_concurrent_requests"`
	RateLimit             float64       `json:"rate_limit"`
}

// SentryConfig contains configuration for Sentry integration
type SentryConfig struct {
	DSN         string  `json:"dsn"`
	SampleRate  float64 `json:"sample_rate"`
	Environment string  `json:"environment"`
}

func SetBuildInfo(v, commit string) {
	Version = v
	CommitHash = commit
}

type Config struct {
	listenPort       string
	logLevel         string
	logFormat        string
	pageSize         int
	assetDir         string
	sessionCacheSize int
	sessionTTL       time.Duration
	upstreamConfig   *UpstreamConfig
	chainConfig      *ChainConfig
	corsConfig       *CORSConfig
	metricsConfig    *MetricsConfig
	sentryConfig     *SentryConfig
}

func setDefaults() {
	viper.SetDefault("PORT", DefaultAPIPort)
	viper.SetDefault("LOG_LEVEL", "warn")
	viper.SetDefault("LOG_FORMAT", "json")
	viper.SetDefault("NFT_API_URL", DefaultNftApiUrl)
	viper.SetDefault("CONTRACT_ADDRESS", DefaultContractAddress)
	viper.SetDefault("FETCH_LIMIT", DefaultFetchLimit)
	viper.SetDefault("QUERY_TIMEOUT", time.Duration(DefaultQueryTimeout))
	viper.SetDefault("MAX_CONCURRENT_REQUESTS", DefaultMaxConcurrentRequests)
	viper.SetDefault("UPSTREAM_RATE_LIMIT", DefaultUpstreamRateLimit)
	viper.SetDefault("PAGE_SIZE", DefaultPageSize)
	viper.SetDefault("ASSET_DIR", DefaultAssetDir)
	viper.SetDefault("SESSION_CACHE_SIZE", DefaultSessionCacheSize)
	viper.SetDefault("SESSION_TTL", DefaultSessionTTL)
	viper.SetDefault("CHAIN_ID", DefaultChainId)
	viper.SetDefault("CHAIN_NAME", DefaultChainName)
	viper.SetDefault("RPC_URL", DefaultRpcUrl)
	viper.SetDefault("EXPLORER_URL", DefaultExplorerUrl)
	viper.SetDefault("CORS_ENABLED", true)
	viper.SetDefault("CORS_ALLOW_ORIGINS", "*")
	viper.SetDefault("CORS_ALLOW_CREDENTIALS", false)
	viper.SetDefault("CORS_MAX_AGE", 0)
	viper.SetDefault("METRICS_ENABLED", false)
	viper.SetDefault("METRICS_PATH", DefaultMetricsPath)
	viper.SetDefault("METRICS_PORT", DefaultMetricsPort)
	viper.SetDefault("ENVIRONMENT", DefaultEnvironment)

	// Sentry defaults
	viper.SetDefault("SENTRY_DSN", "")
	viper.SetDefault("SENTRY_SAMPLE_RATE", 0.01)
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
		listenPort:       viper.GetString("PORT"),
		logLevel:         viper.GetString("LOG_LEVEL"),
		logFormat:        viper.GetString("LOG_FORMAT"),
		pageSize:         viper.GetInt("PAGE_SIZE"),
		assetDir:         viper.GetString("ASSET_DIR"),
		sessionCacheSize: viper.GetInt("SESSION_CACHE_SIZE"),
		sessionTTL:       viper.GetDuration("SESSION_TTL"),
		upstreamConfig: &UpstreamConfig{
			NftApiUrl:             viper.GetString("NFT_API_URL"),
			ContractAddress:       viper.GetString("CONTRACT_ADDRESS"),
			FetchLimit:            viper.GetInt("FETCH_LIMIT"),
			QueryTimeout:          viper.GetDuration("QUERY_TIMEOUT"),
			MaxConcurrentRequests: viper.GetInt("MAX_CONCURRENT_REQUESTS"),
			RateLimit:             viper.GetFloat64("UPSTREAM_RATE_LIMIT"),
		},
		chainConfig: &ChainConfig{
			ChainId: viper.GetInt64("CHAIN_ID"),
			Name:    viper.GetString("CHAIN_NAME"),
			NativeCurrency: NativeCurrency{
				Name:     "APE",
				Symbol:   "APE",
				Decimals: 18,
			},
			RpcUrl:      viper.GetString("RPC_URL"),
			ExplorerUrl: viper.GetString("EXPLORER_URL"),
		},
		corsConfig: &CORSConfig{
			Enabled:          viper.GetBool("CORS_ENABLED"),
			AllowOrigins:     splitList(viper.GetString("CORS_ALLOW_ORIGINS")),
			AllowCredentials: viper.GetBool("CORS_ALLOW_CREDENTIALS"),
			MaxAge:           viper.GetInt("CORS_MAX_AGE"),
		},
		metricsConfig: &MetricsConfig{
			Enabled: viper.GetBool("METRICS_ENABLED"),
			Path:    viper.GetString("METRICS_PATH"),
			Port:    viper.GetString("METRICS_PORT"),
		},
		sentryConfig: &SentryConfig{
			DSN:         viper.GetString("SENTRY_DSN"),
			SampleRate:  viper.GetFloat64("SENTRY_SAMPLE_RATE"),
			Environment: viper.GetString("ENVIRONMENT"),
		},
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// NewTestConfig returns a valid configuration populated with defaults, for tests.
func NewTestConfig() *Config {
	return &Config{
		listenPort:       DefaultAPIPort,
		logLevel:         "warn",
		logFormat:        "json",
		pageSize:         DefaultPageSize,
		assetDir:         DefaultAssetDir,
		sessionCacheSize: DefaultSessionCacheSize,
		sessionTTL:       DefaultSessionTTL,
		upstreamConfig: &UpstreamConfig{
			NftApiUrl:             DefaultNftApiUrl,
			ContractAddress:       DefaultContractAddress,
			FetchLimit:            DefaultFetchLimit,
			MaxConcurrentRequests: DefaultMaxConcurrentRequests,
		},
		chainConfig: &ChainConfig{
			ChainId: DefaultChainId,
			Name:    DefaultChainName,
			NativeCurrency: NativeCurrency{
				Name:     "APE",
				Symbol:   "APE",
				Decimals: 18,
			},
			RpcUrl:      DefaultRpcUrl,
			ExplorerUrl: DefaultExplorerUrl,
		},
		corsConfig:    &CORSConfig{Enabled: true, AllowOrigins: []string{"*"}},
		metricsConfig: &MetricsConfig{Path: DefaultMetricsPath, Port: DefaultMetricsPort},
		sentryConfig:  &SentryConfig{Environment: DefaultEnvironment},
	}
}

func (c Config) GetListenPort() string {
	return c.listenPort
}

func (c Config) GetPageSize() int {
	return c.pageSize
}

func (c Config) GetAssetDir() string {
	return c.assetDir
}

// SetAssetDir assigns the asset directory for testing purposes.
func (c *Config) SetAssetDir(dir string) {
	c.assetDir = dir
}

func (c Config) GetSessionCacheSize() int {
	return c.sessionCacheSize
}

func (c Config) GetSessionTTL() time.Duration {
	return c.sessionTTL
}

func (c Config) GetUpstreamConfig() *UpstreamConfig {
	return c.upstreamConfig
}

// SetUpstreamConfig assigns the upstream config for testing purposes.
func (c *Config) SetUpstreamConfig(upstreamCfg *UpstreamConfig) {
	c.upstreamConfig = upstreamCfg
}

func (c Config) GetChainConfig() *ChainConfig {
	return c.chainConfig
}

func (c Config) GetChainId() string {
	return strconv.FormatInt(c.chainConfig.ChainId, 10)
}

func (c Config) GetCORSConfig() *CORSConfig {
	return c.corsConfig
}

// SetCORSConfig assigns the CORS config for testing purposes.
func (c *Config) SetCORSConfig(corsCfg *CORSConfig) {
	c.corsConfig = corsCfg
}

func (c Config) GetMetricsConfig() *MetricsConfig {
	return c.metricsConfig
}

func (c Config) GetSentryConfig() *SentryConfig {
	if c.sentryConfig == nil || c.sentryConfig.DSN == "" {
		return nil
	}
	return c.sentryConfig
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
	if err := c.validateUpstreamConfig(); err != nil {
		return err
	}
	if err := c.validateMetricsConfig(); err != nil {
		return err
	}
	if err := c.validateCORSConfig(); err != nil {
		return err
	}
	return c.chainConfig.Validate()
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

// validateNumericSettings validates gallery numeric configuration values
func (c Config) validateNumericSettings() error {
	if c.pageSize < 1 {
		return types.NewValidationError("PAGE_SIZE", "must be at least 1")
	}
	if c.sessionCacheSize < 1 {
		return types.NewValidationError("SESSION_CACHE_SIZE", "must be at least 1")
	}
	if c.sessionTTL < 0 {
		return types.NewValidationError("SESSION_TTL", "must be non-negative")
	}
	if len(c.assetDir) == 0 {
		return types.NewValidationError("ASSET_DIR", "required field is missing")
	}
	return nil
}

// validateUpstreamConfig validates the remote NFT API settings
func (c Config) validateUpstreamConfig() error {
	uc := c.upstreamConfig
	if u, err := url.Parse(uc.NftApiUrl); err != nil || uc.NftApiUrl == "" {
		return types.NewValidationError("NFT_API_URL", fmt.Sprintf("invalid URL format: %s", uc.NftApiUrl))
	} else if u.Scheme != "http" && u.Scheme != "https" {
		return types.NewValidationError("NFT_API_URL", fmt.Sprintf("must use http or https scheme, got: %s", u.Scheme))
	}
	if !common.IsHexAddress(uc.ContractAddress) {
		return types.NewInvalidValueError("CONTRACT_ADDRESS", uc.ContractAddress, "must be a hex address")
	}
	if uc.FetchLimit < 1 || uc.FetchLimit > MaxFetchLimit {
		return types.NewInvalidValueError("FETCH_LIMIT", fmt.Sprintf("%d", uc.FetchLimit), fmt.Sprintf("must be between 1 and %d", MaxFetchLimit))
	}
	if uc.QueryTimeout < 0 {
		return types.NewValidationError("QUERY_TIMEOUT", "must be non-negative")
	}
	if uc.MaxConcurrentRequests < 1 {
		return types.NewValidationError("MAX_CONCURRENT_REQUESTS", "must be at least 1")
	}
	if uc.MaxConcurrentRequests > MaxAllowedConcurrentRequests {
		return types.NewInvalidValueError("MAX_CONCURRENT_REQUESTS", fmt.Sprintf("%d", uc.MaxConcurrentRequests), fmt.Sprintf("must not exceed %d", MaxAllowedConcurrentRequests))
	}
	if uc.RateLimit < 0 {
		return types.NewValidationError("UPSTREAM_RATE_LIMIT", "must be non-negative")
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

// validateCORSConfig validates CORS configuration
func (c Config) validateCORSConfig() error {
	if c.corsConfig == nil || !c.corsConfig.Enabled {
		return nil
	}
	if len(c.corsConfig.AllowOrigins) == 0 {
		return types.NewValidationError("CORS_ALLOW_ORIGINS", "at least one origin is required when CORS is enabled")
	}
	if c.corsConfig.MaxAge < 0 {
		return types.NewValidationError("CORS_MAX_AGE", "must be non-negative")
	}
	return nil
}
