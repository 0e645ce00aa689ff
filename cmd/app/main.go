package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Asmaidbaba/projet-gestion-aeroport/config"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/bootstrap"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/cache"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/kafka"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/repository"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/service/booking"
	"github.com/Asmaidbaba/projet-gestion-aeroport/internal/service/flights"
)

func main() {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		log.Fatal().Err(err).Msg("connect postgres")
	}
	defer pool.Close()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Search.CacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightRepo := repository.NewFlightRepository(pool)
	bookingRepo := repository.NewBookingRepository(pool)
	flightService := flights.NewFlightService(flightRepo, redisCache)
	bookingService := booking.NewBookingService(
		bookingRepo,
		flightRepo,
		redisCache,
		producer,
		cfg.Kafka.BookingsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
	)

	log.Info().Str("address", cfg.HTTP.Address).Msg("starting api server")
	if err := bootstrap.Run(ctx, cfg, flightService, bookingService); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
