package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"contact_news/internal/api"
	"contact_news/internal/scheduler"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the HTTP endpoints and, when enabled, the scheduled batch refresh",
	Args:  cobra.NoArgs,
	RunE:  runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	a, err := newApp()
	if err != nil {
		return err
	}
	defer a.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gin.SetMode(gin.ReleaseMode)
	handler := api.NewHandler(a.news, a.batch, a.chat, a.logger)
	router := api.NewRouter(handler, api.RouterConfig{
		Resolver:       a.resolver,
		ServiceRoleKey: a.cfg.Auth.ServiceRoleKey,
		RequestTimeout: a.cfg.HTTP.RequestTimeout,
		BatchTimeout:   a.cfg.Batch.RunTimeout,
	})

	srv := &http.Server{
		Addr:              a.cfg.HTTP.Addr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	if a.cfg.Batch.Enabled {
		sched := scheduler.NewScheduler(a.batch, a.cfg.Batch.Interval, a.cfg.Batch.RunTimeout, a.logger)
		go func() {
			if err := sched.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
				a.logger.Error("scheduler error", "error", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("http server listening", "addr", srv.Addr, "batch_enabled", a.cfg.Batch.Enabled)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		a.logger.Info("received shutdown signal")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
