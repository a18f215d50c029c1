package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"

	"ms-booking-client/internal/api"
	"ms-booking-client/internal/config"
	"ms-booking-client/internal/credentials"
	"ms-booking-client/internal/gateway"
	"ms-booking-client/internal/kafka"
	"ms-booking-client/internal/logger"
	"ms-booking-client/internal/state"
	"ms-booking-client/internal/tickets"
)

// logActions traces every store transition without its payload.
func logActions(log *logger.Logger) state.Subscriber {
	return func(a state.Action, next state.State) {
		log.LogStore(a.Type.Slice(), string(a.Type), fmt.Sprintf("auth=%s events=%d bookings=%d",
			next.Auth.Status(), len(next.Events.Events), len(next.Bookings.Bookings)))
	}
}

// startActivityStream mirrors store actions to Kafka. It returns nil when the
// stream is disabled.
func startActivityStream(cfg *config.Config, store *state.Store, log *logger.Logger) *kafka.ActivityPublisher {
	if !cfg.Kafka.Enabled {
		log.Info("KAFKA", "Activity stream disabled")
		return nil
	}

	log.Info("KAFKA", fmt.Sprintf("Using Kafka brokers: %v", cfg.Kafka.Brokers))
	if err := kafka.EnsureTopicsExist(cfg.Kafka.Brokers, []string{cfg.Kafka.ActivityTopic}, log); err != nil {
		log.Warn("KAFKA", fmt.Sprintf("Topic creation might have failed: %v", err))
	} else {
		log.Info("KAFKA", "Activity topic ensured successfully")
	}

	publisher := kafka.NewActivityPublisher(kafka.NewWriter(cfg.Kafka.Brokers, cfg.Kafka.ActivityTopic), cfg.Kafka.ActivityTopic, log)
	store.Subscribe(publisher.Subscriber())
	log.Info("KAFKA", fmt.Sprintf("Publishing store activity to %s", cfg.Kafka.ActivityTopic))
	return publisher
}

func main() {
	envErr := godotenv.Load()
	cfg := config.Load()

	log, err := logger.NewLogger(logger.Options{Dir: cfg.Log.Dir, MinLevel: logger.ParseLevel(cfg.Log.Level)})
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("APP", "Starting booking client initialization")
	if envErr != nil {
		log.Warn("CONFIG", ".env file not found, using environment variables")
	} else {
		log.Info("CONFIG", "Loaded environment variables from .env file")
	}

	ctx := context.Background()

	creds, closeCreds, err := credentials.Open(ctx, cfg)
	if err != nil {
		log.Fatal("CREDENTIALS", fmt.Sprintf("Failed to open %s credential store: %v", cfg.Credentials.Backend, err))
	}
	defer func() {
		if err := closeCreds(); err != nil {
			log.Error("CREDENTIALS", fmt.Sprintf("Failed to close credential store: %v", err))
		}
	}()
	log.Info("CREDENTIALS", fmt.Sprintf("✅ Using %s credential store", cfg.Credentials.Backend))

	client := api.NewClient(cfg.API.BaseURL, &http.Client{Timeout: cfg.API.Timeout}, api.StoreTokens(creds), log)
	log.Info("API", fmt.Sprintf("Booking API at %s", cfg.API.BaseURL))

	toasts := state.NewToastQueue(log)
	store := state.NewStore(logActions(log))
	publisher := startActivityStream(cfg, store, log)

	authService := state.NewAuthService(store, client, creds, toasts, log)
	handler := &gateway.Handler{
		Store:    store,
		Auth:     authService,
		Events:   state.NewEventService(store, client, toasts, log),
		Bookings: state.NewBookingService(store, client, toasts, log),
		Toasts:   toasts,
		QR:       tickets.NewQRGenerator(cfg.Tickets.QRSize),
		Logger:   log,
	}

	log.Info("AUTH", "Rehydrating persisted session")
	authService.Rehydrate(ctx)
	if session := store.Session(); session != nil {
		log.Info("AUTH", fmt.Sprintf("Session restored for %s (%s)", session.Name, session.Role))
	}

	log.Info("HTTP", "Setting up router")
	r := chi.NewRouter()
	handler.RegisterRoutes(r)

	server := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info("HTTP", fmt.Sprintf("🚀 Booking client running on %s", cfg.Server.Port))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP", fmt.Sprintf("HTTP server error: %v", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	log.Info("APP", "Client started successfully, waiting for shutdown signal")
	<-stop

	log.Info("APP", "Shutdown signal received, initiating graceful shutdown")
	ctxShutdown, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := server.Shutdown(ctxShutdown); err != nil {
		log.Error("HTTP", fmt.Sprintf("Server Shutdown Failed: %v", err))
	}
	if publisher != nil {
		if err := publisher.Close(); err != nil {
			log.Error("KAFKA", fmt.Sprintf("Failed to close activity publisher: %v", err))
		}
	}
	log.Info("APP", "✅ Booking client shutdown complete")
}
