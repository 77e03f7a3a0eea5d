package main

import (
	"context"
	"errors"
	"github.com/bbernstein/linkstation/backend-go/internal/config"
	"github.com/bbernstein/linkstation/backend-go/internal/handler"
	"github.com/bbernstein/linkstation/backend-go/internal/linkstation"
	"github.com/bbernstein/linkstation/backend-go/internal/server"
	"github.com/rs/zerolog/log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func newServer(cfg *config.Config) *http.Server {
	linkStationHandler := handler.NewLinkStationHandler(linkstation.NewDefaultFinder())

	return &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           server.NewHandler(linkStationHandler),
		ReadHeaderTimeout: 5 * time.Second,
	}
}

func main() {
	cfg := config.LoadFromEnv()
	cfg.InitializeLogging()

	srv := newServer(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("addr", srv.Addr).Str("path", server.FinderPath).Msg("Local link station server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Server error")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Shutdown failed")
	}
}
