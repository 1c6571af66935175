package cmd

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/alphalions/gallery/api"
	"github.com/alphalions/gallery/assets"
	"github.com/alphalions/gallery/config"
	"github.com/alphalions/gallery/fetcher"
	"github.com/alphalions/gallery/gallery"
	"github.com/alphalions/gallery/log"
	"github.com/alphalions/gallery/metrics"
	"github.com/alphalions/gallery/sentry_integration"
	"github.com/alphalions/gallery/types"
)

func apiCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "api",
		Short: "Run the gallery API server",
		Long: `
Run the gallery API server.

This command starts the HTTP API that connects wallets, lists their Alpha Lions tokens page by page,
and serves the bundled pixel art and 3D model downloads.

You can configure the NFT API, chain, asset directory, logging, and server options via environment variables.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.GetConfig()
			if err != nil {
				return err
			}

			logger := log.NewLogger(cfg)

			if err := sentry_integration.Init(cfg); err != nil {
				logger.Warn("failed to initialize sentry", slog.Any("error", err))
			}
			defer sentry_integration.Flush()

			metricsServer := metrics.NewServer(cfg, logger)
			go func() {
				if err := metricsServer.Start(); err != nil {
					logger.Error("metrics server stopped", slog.Any("error", err))
				}
			}()

			bundle, err := assets.LoadBundle(os.DirFS(cfg.GetAssetDir()))
			if err != nil {
				return err
			}
			logBundle(logger, bundle)

			upstream := cfg.GetUpstreamConfig()
			nfts := fetcher.NewShared(fetcher.NewClient(upstream, logger))
			resolver := assets.NewResolver(bundle, assets.DefaultBaseURL)
			downloader := assets.NewDownloader(resolver, upstream.QueryTimeout, logger)
			store := gallery.NewStore(nfts, cfg.GetPageSize(), cfg.GetSessionCacheSize(), cfg.GetSessionTTL(), logger)

			server := api.New(cfg, logger, store, resolver, downloader)

			// graceful shutdown
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			go func() {
				<-sigChan
				logger.Info("shutting down API server...")

				ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
				defer cancel()
				if err := metricsServer.Shutdown(ctx); err != nil {
					logger.Error("metrics server shutdown failed", slog.Any("error", err))
				}

				if err := server.Shutdown(); err != nil {
					logger.Error("graceful shutdown failed", slog.String("error", err.Error()))
					sentry_integration.Flush()
					os.Exit(1)
				}
				sentry_integration.Flush()
				os.Exit(0)
			}()

			return server.Start()
		},
	}

	return cmd
}

func logBundle(logger *slog.Logger, bundle *assets.Bundle) {
	args := make([]any, 0, len(types.Formats))
	for _, f := range types.Formats {
		if f == types.FormatPFP {
			continue
		}
		args = append(args, slog.Int(f.Label(), bundle.Count(f)))
	}
	logger.Info("asset bundle loaded", args...)
}
