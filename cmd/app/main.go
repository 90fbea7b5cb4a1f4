package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Domenick1991/ticketoffice/config"
	"github.com/Domenick1991/ticketoffice/internal/bootstrap"
	"github.com/Domenick1991/ticketoffice/internal/cache"
	"github.com/Domenick1991/ticketoffice/internal/catalog"
	"github.com/Domenick1991/ticketoffice/internal/kafka"
	"github.com/Domenick1991/ticketoffice/internal/ledger"
	"github.com/Domenick1991/ticketoffice/internal/metrics"
	"github.com/Domenick1991/ticketoffice/internal/service/booking"
	"github.com/Domenick1991/ticketoffice/internal/service/flights"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfgPath := os.Getenv("CONFIG_PATH")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}

	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	metrics.Register()

	cat := catalog.New(cfg.Airline.Name)
	bookings := ledger.New()

	redisCache := cache.NewRedisCache(cfg.Redis, time.Duration(cfg.Airline.FlightsCacheTTLSeconds)*time.Second)
	producer := kafka.NewProducer(cfg.Kafka.Brokers)
	defer producer.Close()

	flightService := flights.NewFlightService(cat, redisCache)
	bookingService := booking.NewBookingService(
		bookings,
		cat,
		producer,
		cfg.Kafka.BookingEventsTopic,
		booking.WithNotificationsTopic(cfg.Kafka.NotificationsTopic),
		booking.WithPublishRetry(
			cfg.Publish.Attempts,
			time.Duration(cfg.Publish.DelayMs)*time.Millisecond,
			time.Duration(cfg.Publish.MaxDelayMs)*time.Millisecond,
		),
	)

	if err := bootstrap.Run(ctx, cfg, flightService, bookingService); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
