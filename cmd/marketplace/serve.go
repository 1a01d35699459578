package main

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/rs/cors"
	"github.com/spf13/cobra"

	"github.com/edge-marketplace/marketplace/internal/api"
	"github.com/edge-marketplace/marketplace/internal/api/handler"
	"github.com/edge-marketplace/marketplace/internal/api/metrics"
	"github.com/edge-marketplace/marketplace/internal/core/service"
	"github.com/edge-marketplace/marketplace/internal/infrastructure/queue"
	"github.com/edge-marketplace/marketplace/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP bridge",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
}

func runServe(ctx context.Context) error {
	cfg, log, err := bootstrap(ctx)
	if err != nil {
		return err
	}

	snap, closeSnap, err := openSnapshot(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeSnap()

	store := service.NewStore(ctx, snap, logger.Component("store"))
	defer metrics.Track(store)()

	feed := queue.NewBroadcaster(logger.Component("change_feed"))
	feed.Start(ctx)
	defer store.Subscribe(feed.Enqueue)()

	router := api.NewRouter(api.Dependencies{
		Store:          store,
		Feed:           feed,
		Probes:         map[string]handler.Pinger{cfg.Store.Backend: snap},
		AllowedOrigins: cfg.HTTP.CORSOrigins,
		Logger:         logger.Component("http"),
	})

	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.HTTP.CORSOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           c.Handler(router),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       time.Minute,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("backend", cfg.Store.Backend).Msg("http server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
