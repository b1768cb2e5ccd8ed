package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/styledecor/booking-api/internal/api"
	mongodb "github.com/styledecor/booking-api/internal/infrastructure/db/mongo"
	redisdb "github.com/styledecor/booking-api/internal/infrastructure/db/redis"
	"github.com/styledecor/booking-api/internal/infrastructure/payment"
	"github.com/styledecor/booking-api/internal/infrastructure/queue"
	"github.com/styledecor/booking-api/internal/pkg/config"
	"github.com/styledecor/booking-api/pkg/logger"
)

// @title           StyleDecor Booking API
// @version         1.0
// @description     Booking and fulfillment backend for the StyleDecor home-decoration marketplace.
// @host            localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	// Without the signing secret no credential can ever verify; refuse to
	// start rather than serve a dead API.
	if cfg.JWTSecret == "" {
		log.Fatal().Msg("JWT_SECRET is required")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mongoClient, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := mongoClient.Disconnect(context.Background()); err != nil {
			log.Error().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisdb.Connect(ctx, redisdb.Config{
		Addr: cfg.Redis.Addr,
		DB:   cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer rdb.Close()

	userRepo := mongodb.NewUserRepository(db)
	bookingRepo := mongodb.NewBookingRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create user indexes")
	}
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create booking indexes")
	}

	dispatcher := queue.NewDispatcher(0, mongodb.NewEventRepository(db), log)
	dispatcher.Start(ctx)

	provider := payment.NewClient(cfg.Payment.BaseURL, cfg.Payment.SecretKey)

	e := api.NewRouter(db, rdb, cfg, dispatcher, provider, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}
}
