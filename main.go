package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Hallssss0000/SGHSS-API/internal/api"
	"github.com/Hallssss0000/SGHSS-API/internal/cache"
	"github.com/Hallssss0000/SGHSS-API/internal/config"
	"github.com/Hallssss0000/SGHSS-API/internal/middleware"
	"github.com/Hallssss0000/SGHSS-API/internal/store"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	cfg := config.Load()
	cfg.LogStartupWarnings()

	st := store.New(cfg.DataDir)
	if err := st.Bootstrap(); err != nil {
		log.Fatal().Err(err).Str("data_dir", cfg.DataDir).Msg("bootstrap do diretório de dados")
	}

	h := &api.Handler{Store: st, Cfg: cfg, Cache: cache.New(30 * time.Second)}
	r := api.NewRouter(h)

	chain := middleware.Recover(
		middleware.RequestID(
			middleware.Logging(
				middleware.Timeout(cfg.RequestTimeoutSec)(
					middleware.CORS(cfg.CORSOrigins)(
						middleware.Gzip(r))))))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      chain,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
	}

	go func() {
		log.Info().Str("port", cfg.Port).Str("data_dir", cfg.DataDir).Msg("API TELEMED no ar")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
	log.Info().Msg("API encerrada")
}
