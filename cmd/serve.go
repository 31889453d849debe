package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"studytracker/internal/api"
	"studytracker/internal/api/handler/v1handler"
	"studytracker/internal/config"
	"studytracker/internal/progress"
	"studytracker/internal/study"
	"studytracker/internal/timer"
	"studytracker/internal/worker"
	"studytracker/pkg/logger"
	"studytracker/pkg/storage/postgres"
	"studytracker/pkg/tracing"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func setupTracing(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	shutdown, err := tracing.Setup(ctx, tracing.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not setup tracing", zap.Error(err))
	}

	return func(ctx context.Context) {
		if err := shutdown(ctx); err != nil {
			logger.Error(ctx, "could not flush spans", zap.Error(err))
		}
	}
}

func setupWorker(ctx context.Context,
	cfg *config.Config,
	pgsql *postgres.PgSQL,
	p progress.Progress) func(ctx context.Context) {
	riverClient, err := worker.Start(ctx, pgsql.Pool, worker.NewOptions(cfg), p)
	if err != nil {
		logger.Fatal(ctx, "could not start workers", zap.Error(err))
	}

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping workers...")
		if err := riverClient.Stop(ctx); err != nil {
			logger.Error(ctx, "could not stop workers", zap.Error(err))
		}
	}
}

func setupTimer(ctx context.Context, cfg *config.Config, s study.Study) (timer.Timer, func()) {
	options, err := timer.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "invalid timer options", zap.Error(err))
	}

	store, err := timer.OpenStore(cfg.Timer.StatePath)
	if err != nil {
		logger.Fatal(ctx, "could not open timer state", zap.Error(err))
	}

	t, err := timer.New(ctx, options, s, store)
	if err != nil {
		_ = store.Close()
		logger.Fatal(ctx, "could not create timer", zap.Error(err))
	}

	runCtx, cancel := context.WithCancel(ctx)
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := t.Run(runCtx); err != nil {
			logger.Error(ctx, "timer stopped", zap.Error(err))
		}
	}()

	return t, func() {
		logger.Info(ctx, "stopping timer...")
		cancel()
		wg.Wait()
		if err := store.Close(); err != nil {
			logger.Warn(ctx, "could not close timer state", zap.Error(err))
		}
	}
}

func setupServer(ctx context.Context, cfg *config.Config, deps api.Deps) func(ctx context.Context) {
	options, err := api.NewOptions(cfg)
	if err != nil {
		logger.Fatal(ctx, "invalid webserver options", zap.Error(err))
	}

	server, err := api.NewServer(deps, options)
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", options.Addr))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts API server, pomodoro timer and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			stopTracing := setupTracing(ctx, cfg)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			progressOptions, err := progress.NewOptions(cfg)
			if err != nil {
				logger.Fatal(ctx, "invalid progress options", zap.Error(err))
			}
			progressSvc := progress.New(strg, progressOptions)
			studySvc := study.New(strg, study.NewOptions(cfg))

			stopWorker := setupWorker(ctx, cfg, strg, progressSvc)

			t, stopTimer := setupTimer(ctx, cfg, studySvc)
			defer stopTimer()

			stopWebserver := setupServer(ctx, cfg, api.Deps{
				Deps: v1handler.Deps{
					Study:    studySvc,
					Progress: progressSvc,
					Timer:    t,
				},
				Health: strg,
			})

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
			stopWorker(shutdownCtx)
			stopTracing(shutdownCtx)
		},
	}

	return cmd
}
