package fetcher

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/utils"
	"golang.org/x/sync/semaphore"
	"golang.org/x/time/rate"

	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/metrics"
	"github.com/alphalions/gallery/sentry_integration"
	"github.com/alphalions/gallery/types"
)

// Fetcher returns the tokens a wallet owns in the configured contract.
type Fetcher interface {
	FetchNfts(ctx context.Context, wallet string) ([]types.Token, error)
}

// FetcherFunc adapts a function to the Fetcher interface.
type FetcherFunc func(ctx context.Context, wallet string) ([]types.Token, error)

func (f FetcherFunc) FetchNfts(ctx context.Context, wallet string) ([]types.Token, error) {
	return f(ctx, wallet)
}

// Client queries the remote NFT API. Each call issues exactly one request and never retries.
type Client struct {
	client  *fiber.Client
	cfg     *config.UpstreamConfig
	limiter *semaphore.Weighted
	pacer   *rate.Limiter
	logger  *slog.Logger
}

var _ Fetcher = (*Client)(nil)

// component labels the upstream NFT API in health and error metrics.
const component = "fetcher"

func NewClient(cfg *config.UpstreamConfig, logger *slog.Logger) *Client {
	c := &Client{
		client:  fiber.AcquireClient(),
		cfg:     cfg,
		limiter: semaphore.NewWeighted(int64(cfg.MaxConcurrentRequests)),
		logger:  logger.With("component", component),
	}
	if cfg.RateLimit > 0 {
		c.pacer = rate.NewLimiter(rate.Limit(cfg.RateLimit), 1)
	}
	return c
}

// FetchNfts fetches up to FetchLimit tokens of wallet in a single page. An empty wallet
// yields an empty collection without any network activity.
func (c *Client) FetchNfts(ctx context.Context, wallet string) ([]types.Token, error) {
	wallet = strings.TrimSpace(wallet)
	if wallet == "" {
		return []types.Token{}, nil
	}

	endpoint, err := c.buildURL(wallet)
	if err != nil {
		return nil, types.NewConfigError("invalid NFT_API_URL", err)
	}

	span, ctx := sentry_integration.StartSentrySpan(ctx, "fetch_nfts", "NFT API request")
	defer span.Finish()

	release, err := c.acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer release()

	body, err := c.get(ctx, endpoint)
	if err != nil {
		if !errors.Is(err, context.Canceled) && !errors.Is(err, context.DeadlineExceeded) {
			metrics.SetComponentHealth(component, false)
			sentry_integration.CaptureCurrentHubException(err, sentry.LevelWarning)
		}
		c.logger.Warn("failed to fetch nfts", slog.String("wallet", wallet), slog.String("error", err.Error()))
		return nil, err
	}

	var res types.NftsResponse
	if err := json.Unmarshal(body, &res); err != nil {
		metrics.SetComponentHealth(component, false)
		c.logger.Warn("failed to decode nft response", slog.String("wallet", wallet), slog.String("error", err.Error()))
		return nil, types.NewDecodeError("NFT API response", err)
	}
	metrics.SetComponentHealth(component, true)
	if res.Nfts == nil {
		res.Nfts = []types.Token{}
	}

	c.logger.Debug("fetched nfts",
		slog.String("wallet", wallet),
		slog.Int("count", len(res.Nfts)),
		slog.Int64("total", res.Total))

	return res.Nfts, nil
}

func (c *Client) buildURL(wallet string) (string, error) {
	parsedUrl, err := url.Parse(c.cfg.NftApiUrl)
	if err != nil {
		return "", err
	}

	query := parsedUrl.Query()
	query.Set("wallet", wallet)
	query.Set("contract", c.cfg.ContractAddress)
	query.Set("page", "1")
	query.Set("limit", strconv.Itoa(c.cfg.FetchLimit))
	parsedUrl.RawQuery = query.Encode()

	return parsedUrl.String(), nil
}

// acquire takes an upstream request slot and waits for the pacer.
func (c *Client) acquire(ctx context.Context) (func(), error) {
	start := time.Now()
	if err := c.limiter.Acquire(ctx, 1); err != nil {
		return nil, err
	}
	metrics.ObserveSemaphoreWait(time.Since(start))

	if c.pacer != nil {
		if err := c.pacer.Wait(ctx); err != nil {
			c.limiter.Release(1)
			return nil, err
		}
	}
	return func() { c.limiter.Release(1) }, nil
}

func (c *Client) get(ctx context.Context, endpoint string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	metrics.AddConcurrentRequests(1)
	defer metrics.AddConcurrentRequests(-1)

	agent := c.client.Get(endpoint)
	agent.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	if c.cfg.QueryTimeout > 0 {
		agent.Timeout(c.cfg.QueryTimeout)
	}

	code, body, errs := agent.Bytes()
	label := metricsLabel(endpoint)
	if err := errors.Join(errs...); err != nil {
		metrics.TrackExternalRequest(label, 0, time.Since(start))
		return nil, types.NewNetworkError(c.cfg.NftApiUrl, err)
	}
	metrics.TrackExternalRequest(label, code, time.Since(start))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		detail := utils.StatusMessage(code)
		var res types.ErrorResponse
		if json.Unmarshal(body, &res) == nil && res.Error != "" {
			detail = res.Error
		}
		return nil, types.NewHTTPStatusError(code, detail)
	}

	return body, nil
}

func metricsLabel(endpoint string) string {
	u, err := url.Parse(endpoint)
	if err != nil {
		return "unknown"
	}
	return u.Host + u.Path
}
