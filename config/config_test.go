package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alphalions/gallery/types"
)

func TestNewTestConfig_IsValid(t *testing.T) {
	cfg := NewTestConfig()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "8080", cfg.GetListenPort())
	assert.Equal(t, 12, cfg.GetPageSize())
	assert.Equal(t, "33139", cfg.GetChainId())
	assert.Equal(t, slog.LevelWarn, cfg.GetLogLevel())
	assert.Nil(t, cfg.GetSentryConfig())
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Config)
		field   string
		errType types.ErrorType
	}{
		{"bad port", func(c *Config) { c.listenPort = "0" }, "PORT", types.ErrTypeValidation},
		{"non numeric port", func(c *Config) { c.listenPort = "http" }, "PORT", types.ErrTypeValidation},
		{"bad log format", func(c *Config) { c.logFormat = "xml" }, "LOG_FORMAT", types.ErrTypeValidation},
		{"bad log level", func(c *Config) { c.logLevel = "trace" }, "LOG_LEVEL", types.ErrTypeValidation},
		{"zero page size", func(c *Config) { c.pageSize = 0 }, "PAGE_SIZE", types.ErrTypeValidation},
		{"negative ttl", func(c *Config) { c.sessionTTL = -time.Second }, "SESSION_TTL", types.ErrTypeValidation},
		{"empty asset dir", func(c *Config) { c.assetDir = "" }, "ASSET_DIR", types.ErrTypeValidation},
		{"api url scheme", func(c *Config) { c.upstreamConfig.NftApiUrl = "ftp://api.example/nfts" }, "NFT_API_URL", types.ErrTypeValidation},
		{"contract address", func(c *Config) { c.upstreamConfig.ContractAddress = "0x1234" }, "CONTRACT_ADDRESS", types.ErrTypeInvalidValue},
		{"fetch limit", func(c *Config) { c.upstreamConfig.FetchLimit = 5000 }, "FETCH_LIMIT", types.ErrTypeInvalidValue},
		{"negative timeout", func(c *Config) { c.upstreamConfig.QueryTimeout = -1 }, "QUERY_TIMEOUT", types.ErrTypeValidation},
		{"concurrency", func(c *Config) { c.upstreamConfig.MaxConcurrentRequests = 0 }, "MAX_CONCURRENT_REQUESTS", types.ErrTypeValidation},
		{"rate limit", func(c *Config) { c.upstreamConfig.RateLimit = -1 }, "UPSTREAM_RATE_LIMIT", types.ErrTypeValidation},
		{"metrics port clash", func(c *Config) {
			c.metricsConfig = &MetricsConfig{Enabled: true, Path: "/metrics", Port: c.listenPort}
		}, "METRICS_PORT", types.ErrTypeValidation},
		{"metrics path", func(c *Config) {
			c.metricsConfig = &MetricsConfig{Enabled: true, Path: "metrics", Port: "9090"}
		}, "METRICS_PATH", types.ErrTypeValidation},
		{"cors origins", func(c *Config) { c.corsConfig = &CORSConfig{Enabled: true} }, "CORS_ALLOW_ORIGINS", types.ErrTypeValidation},
		{"chain id", func(c *Config) { c.chainConfig.ChainId = 0 }, "CHAIN_ID", types.ErrTypeValidation},
		{"rpc url", func(c *Config) { c.chainConfig.RpcUrl = "ws://rpc.example" }, "RPC_URL", types.ErrTypeValidation},
		{"explorer url", func(c *Config) { c.chainConfig.ExplorerUrl = "ftp://explorer.example" }, "EXPLORER_URL", types.ErrTypeInvalidValue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewTestConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			require.Error(t, err)
			assert.True(t, types.IsType(err, tt.errType), "got %v", err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestConfig_DisabledSectionsSkipValidation(t *testing.T) {
	cfg := NewTestConfig()
	cfg.metricsConfig = &MetricsConfig{Enabled: false, Port: "not-a-port"}
	cfg.corsConfig = &CORSConfig{Enabled: false}

	assert.NoError(t, cfg.Validate())
}

func TestSplitList(t *testing.T) {
	assert.Equal(t, []string{"https://a.example", "*.b.example"}, splitList(" https://a.example, ,*.b.example "))
	assert.Nil(t, splitList(""))
}

func TestConfig_GetLogFormat(t *testing.T) {
	cfg := NewTestConfig()
	assert.Equal(t, "json", cfg.GetLogFormat())

	cfg.logFormat = "plain"
	assert.Equal(t, "plain", cfg.GetLogFormat())
}
