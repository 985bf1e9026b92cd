package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"

	appadmin "github.com/jackyeh168/points_bot/src/internal/application/admin"
	apppoints "github.com/jackyeh168/points_bot/src/internal/application/points"
	"github.com/jackyeh168/points_bot/src/internal/domain/points"
	"github.com/jackyeh168/points_bot/src/internal/infrastructure/events"
	"github.com/jackyeh168/points_bot/src/internal/infrastructure/metrics"
	"github.com/jackyeh168/points_bot/src/internal/interfaces/telegram"
)

func serveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Sync admins, then answer bot commands until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return serveRun(cmd)
		},
	}
}

func serveRun(cmd *cobra.Command) error {
	c, err := setup(cmd)
	if err != nil {
		return err
	}
	defer c.close()
	logger := c.logger

	// Admin sync must succeed before any command is served
	if _, err := c.syncAdmins(); err != nil {
		logger.Error("startup aborted", tint.Err(err))
		return err
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	m := metrics.New(registry)
	publisher := events.NewMultiPublisher(events.NewLogPublisher(logger), m)
	authz := appadmin.NewAuthorizationService(c.admins)

	handler := telegram.NewHandler(telegram.UseCases{
		Balance:     apppoints.NewGetPointsBalanceUseCase(c.accounts),
		AddPoints:   apppoints.NewAddPointsUseCase(c.accounts, c.txManager, authz, publisher),
		OpenBox:     apppoints.NewOpenBoxUseCase(c.accounts, c.txManager, points.NewBoxService(nil), publisher),
		ResetPoints: apppoints.NewResetPointsUseCase(c.accounts, c.txManager, authz, publisher),
	}, m, logger)

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if c.cfg.MetricsAddr != "" {
		srv := startMetricsServer(c.cfg.MetricsAddr, registry)
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			_ = srv.Shutdown(shutdownCtx)
		}()
	}

	runtime := telegram.NewRuntime(c.bot, handler, telegram.RuntimeConfig{
		UpdateTimeout:      c.cfg.UpdateTimeout,
		SkipPendingUpdates: c.cfg.SkipPendingUpdates,
	}, logger)
	return runtime.Run(ctx)
}

func startMetricsServer(addr string, registry *prometheus.Registry) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(registry))
	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("metrics server failed", tint.Err(err))
		}
	}()
	slog.Info("serving metrics", "addr", addr)
	return srv
}
