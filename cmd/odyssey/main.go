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

	"github.com/odyssey-erp/odyssey-rental/cmd/odyssey/cli"
	"github.com/odyssey-erp/odyssey-rental/internal/app"
	"github.com/odyssey-erp/odyssey-rental/internal/observability"
	periodhttp "github.com/odyssey-erp/odyssey-rental/internal/period/http"
	"github.com/odyssey-erp/odyssey-rental/internal/platform/cache"
	"github.com/odyssey-erp/odyssey-rental/internal/windows"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := app.LoadConfig()
	if err != nil {
		slog.Default().Error("load config", slog.Any("error", err))
		os.Exit(1)
	}

	if len(os.Args) > 1 && os.Args[1] == "inspect" {
		opts, err := cli.ParseInspectFlags(os.Args[2:], os.Stderr)
		if err != nil {
			os.Exit(2)
		}
		opts.Location = cfg.Location()
		os.Exit(cli.InspectCommand(opts))
	}

	logger := app.NewLogger(cfg)
	if app.DryRun() {
		logger.Info("dry run, configuration ok", slog.String("timezone", cfg.Location().String()))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisClient, err := cache.New(ctx, cfg.RedisAddr)
	if err != nil {
		logger.Error("connect redis", slog.Any("error", err))
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logger.Warn("redis close", slog.Any("error", err))
		}
	}()

	var metrics *observability.Metrics
	if !cfg.MetricsOff {
		metrics = observability.NewMetrics()
	}

	periodHandler := periodhttp.NewHandler(logger, cfg.Location(), metrics)

	windowRepo := windows.NewRepository(redisClient, cfg.WindowTTL, cfg.Location(), logger, metrics)
	windowService := windows.NewService(windowRepo)
	windowHandler := windows.NewHandler(logger, windowService, cfg.Location())

	router := app.NewRouter(app.RouterParams{
		Logger:         logger,
		Config:         cfg,
		Metrics:        metrics,
		PeriodHandler:  periodHandler,
		WindowsHandler: windowHandler,
	})

	server := &http.Server{
		Addr:         cfg.AppAddr,
		Handler:      router,
		ReadTimeout:  cfg.AppReadTimeout,
		WriteTimeout: cfg.AppWriteTimeout,
	}

	go func() {
		logger.Info("starting http server", slog.String("addr", cfg.AppAddr), slog.String("timezone", cfg.Location().String()))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("http server", slog.Any("error", err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", slog.Any("error", err))
	}
}
