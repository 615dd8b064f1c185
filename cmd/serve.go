package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"accounts/internal/account"
	"accounts/internal/api"
	"accounts/internal/api/handler/v1handler"
	"accounts/internal/config"
	"accounts/internal/worker"
	"accounts/pkg/logger"
	"accounts/pkg/notifier/redisnotifier"
)

func setupServer(ctx context.Context, cfg *config.Config, accounts account.Accounts) func(ctx context.Context) {
	server, err := api.NewServer(api.Deps{
		Deps: v1handler.Deps{
			Accounts: accounts,
		},
	}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...", zap.String("addr", cfg.HTTP.Addr))
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
		Short: "Starts API server and background workers",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			redisClient, closeRedis := getRedis(ctx, cfg)
			defer closeRedis()

			accountNotifier := redisnotifier.New(redisClient, redisnotifier.Options{
				Stream: cfg.Notifier.Stream,
			})

			riverClient, err := worker.Start(ctx, cfg, strg.Pool, accountNotifier)
			if err != nil {
				logger.Fatal(ctx, "could not start workers", zap.Error(err))
			}

			accounts := account.New(strg, account.NewOptions(cfg))

			stopWebserver := setupServer(ctx, cfg, accounts)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)

			logger.Info(ctx, "stopping workers...")
			if err := riverClient.Stop(shutdownCtx); err != nil {
				logger.Error(ctx, "could not stop workers", zap.Error(err))
			}
		},
	}

	return cmd
}
