package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/civicpulse/participant-api/internal/api"
	"github.com/civicpulse/participant-api/internal/config"
	"github.com/civicpulse/participant-api/internal/logger"
	"github.com/civicpulse/participant-api/internal/middleware"
	"github.com/civicpulse/participant-api/internal/services"
	"github.com/civicpulse/participant-api/internal/store"
)

func main() {
	log := logger.New("participant-api")

	cfg, err := config.New()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	st := store.NewMemoryStore()
	handler := api.NewHandler(
		services.NewParticipantService(st),
		services.NewStatsService(st),
		services.NewExportService(st),
	)
	router := api.NewRouter(handler, api.VersionInfo{
		Commit:    cfg.Commit,
		BuildTime: cfg.BuildTime,
	})

	// Fullstack image: serve the front-end assets alongside the API.
	if cfg.StaticDir != "" {
		router.PathPrefix("/").Handler(http.FileServer(http.Dir(cfg.StaticDir)))
	}

	// Recovery is installed on the router itself; the outer layers add
	// request ids, logging and response headers.
	chain := middleware.RequestID(
		middleware.Logging(
			middleware.CORS(
				middleware.NoStore(router))))

	server := &http.Server{
		Addr:         cfg.GetHTTPAddr(),
		Handler:      chain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", server.Addr).Msg("participant API listening")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutting down server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server forced to shutdown")
			os.Exit(1)
		}
		log.Info().Msg("server exited")
	case err := <-errCh:
		log.Fatal().Err(err).Msg("server error")
	}
}
