package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"ms-booking-client/internal/config"
	"ms-booking-client/internal/kafka"
	"ms-booking-client/internal/logger"
)

// activity-tail prints the booking client's activity stream, one line per
// store action.
func main() {
	_ = godotenv.Load() // Loads .env file if present
	cfg := config.Load()

	log, err := logger.NewLogger(logger.Options{Service: "activity-tail", MinLevel: logger.ParseLevel(cfg.Log.Level)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	group := os.Getenv("KAFKA_GROUP_ID")
	if group == "" {
		group = "activity-tail"
	}

	consumer := kafka.NewActivityConsumer(kafka.NewReader(cfg.Kafka.Brokers, cfg.Kafka.ActivityTopic, group), log)
	defer func() {
		if err := consumer.Close(); err != nil {
			log.Error("KAFKA", fmt.Sprintf("Failed to close reader: %v", err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("KAFKA", fmt.Sprintf("Tailing %s on %v as %s", cfg.Kafka.ActivityTopic, cfg.Kafka.Brokers, group))
	err = consumer.Run(ctx, func(a kafka.Activity) {
		payload, _ := json.Marshal(a.Payload)
		log.LogKafka(string(a.Type), cfg.Kafka.ActivityTopic, fmt.Sprintf("%s %s", a.At.Format("15:04:05.000"), payload))
	})
	if err != nil {
		log.Error("KAFKA", fmt.Sprintf("Activity tail stopped: %v", err))
		return
	}
	log.Info("APP", "✅ Activity tail shutdown complete")
}
