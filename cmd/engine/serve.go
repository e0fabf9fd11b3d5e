package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"resumatch-engine/internal/config"
	"resumatch-engine/internal/events"
	"resumatch-engine/internal/feeds"
	"resumatch-engine/internal/httpapi"
	"resumatch-engine/internal/logger"
	"resumatch-engine/internal/match"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the matching engine HTTP server",
	RunE: func(_ *cobra.Command, _ []string) error {
		return serve()
	},
}

func serve() error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if p := os.Getenv("ENGINE_PORT"); p != "" {
		if port, err := strconv.Atoi(p); err == nil {
			cfg.App.Port = port
		}
	}

	cfg, validation := config.NormalizeAndValidate(cfg)
	if !validation.OK() {
		return fmt.Errorf("invalid config: %v", validation.Errors)
	}

	log, err := logger.New(jsonLog || cfg.App.JSONLog, debug || cfg.App.Debug)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	for _, w := range validation.Warnings {
		log.Warn(w)
	}

	limiter := feeds.NewHostLimiter(cfg.Feeds.RatePerSec, cfg.Feeds.Burst)

	var fetchers []feeds.Fetcher
	if cfg.Feeds.RemoteOK.Enabled {
		fetchers = append(fetchers, feeds.NewRemoteOK(limiter))
	}
	if cfg.Feeds.Remotive.Enabled {
		fetchers = append(fetchers, feeds.NewRemotive(limiter))
	}
	if cfg.Feeds.Arbeitnow.Enabled {
		fetchers = append(fetchers, feeds.NewArbeitnow(limiter, cfg.Feeds.Arbeitnow.Pages))
	}
	if cfg.Feeds.WeWorkRemotely.Enabled {
		fetchers = append(fetchers, feeds.NewWeWorkRemotely(limiter))
	}

	agg := feeds.NewAggregator(log, time.Duration(cfg.Feeds.TimeoutSeconds)*time.Second, fetchers...)
	hub := events.NewHub()
	engine := match.NewEngine(agg, hub, log, cfg.Match.FallbackMin)

	mux := httpapi.NewMux(httpapi.Deps{Engine: engine, Hub: hub})
	handler := httpapi.Chain(mux,
		httpapi.RequestID,
		httpapi.Recover(log),
		httpapi.AccessLog(log),
	)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info("listening", zap.Int("port", cfg.App.Port), zap.Int("feeds", len(fetchers)))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info("shutting down")
		shutCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutCtx); err != nil {
			return err
		}
	}
	return nil
}
