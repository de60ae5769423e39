// Command server runs the daily-lines HTTP API.
//
// Boot sequence:
//  1. load .env (best effort) and configuration from the environment
//  2. configure zerolog (level, optional pretty console output)
//  3. open the SQLite database and run migrations
//  4. build the content catalog and, when enabled, seed the default group
//  5. set up OpenTelemetry tracing
//  6. serve the Gin router with graceful shutdown on SIGINT/SIGTERM
//
// @title        Daily Lines API
// @version      1.0
// @description  Daily writing journal backend: demographic content groups, one sentence a day, entries, likes, and participation counts.
// @BasePath     /api/v1
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/tbourn/daily-lines-backend/docs"
	"github.com/tbourn/daily-lines-backend/internal/catalog"
	"github.com/tbourn/daily-lines-backend/internal/config"
	httpapi "github.com/tbourn/daily-lines-backend/internal/http"
	"github.com/tbourn/daily-lines-backend/internal/observability"
	"github.com/tbourn/daily-lines-backend/internal/repo"
	"github.com/tbourn/daily-lines-backend/internal/services"
	"github.com/tbourn/daily-lines-backend/internal/sysutil"
)

// version is stamped at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	// Local development convenience; the file is optional.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	// Logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	// Database
	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.DBPath).Msg("open database")
	}
	if err := repo.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate database")
	}

	// Content catalog
	cat := catalog.New()

	// Seed: materialize the default group's full programme so first reads
	// never race the lazy path.
	if cfg.SeedOnStart {
		seedSvc := &services.SentenceService{DB: db, Catalog: cat, Epoch: cfg.CampaignEpoch}
		n := seedSvc.EnsureAll(context.Background(), catalog.DefaultGroupCode)
		log.Info().Int("sentences", n).Str("group", catalog.DefaultGroupCode).Msg("seeded default programme")
	}

	// Tracing
	otelCfg := cfg.OTEL
	otelCfg.ServiceName = sysutil.FirstNonEmpty(otelCfg.ServiceName, "daily-lines-backend")
	shutdownOTel, err := observability.SetupOTel(context.Background(), otelCfg, version)
	if err != nil {
		log.Fatal().Err(err).Msg("setup tracing")
	}

	// Router
	gin.SetMode(cfg.GinMode)
	r := gin.New()
	httpapi.RegisterRoutes(r, db, cat, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Str("version", version).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("http shutdown")
	}
	if err := shutdownOTel(ctx); err != nil {
		log.Error().Err(err).Msg("tracing shutdown")
	}
}
