package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/payrelay/payments-service/internal/config"
	"github.com/payrelay/payments-service/internal/events"
	"github.com/payrelay/payments-service/internal/metrics"
	"github.com/payrelay/payments-service/internal/payment"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	provider := payment.NewStripeProvider(cfg.StripeSecretKey, cfg.StripeWebhookSecret, payment.RedirectURLs{
		SuccessURL: cfg.StripeSuccessURL,
		CancelURL:  cfg.StripeCancelURL,
	})

	var emitter events.Emitter
	kafkaClient := events.NewKafkaClient(cfg.KafkaBrokers)
	if kafkaClient.Enabled() {
		kafkaEmitter := events.NewKafkaEmitter(kafkaClient, cfg.PaymentEventsTopic)
		defer kafkaEmitter.Close()
		emitter = kafkaEmitter
		log.Printf("Publishing payment confirmations to topic %s", cfg.PaymentEventsTopic)
	} else {
		log.Println("Warning: KAFKA_BROKERS not set, payment confirmations will only be logged")
		emitter = events.NewLogEmitter()
	}

	var deduper events.Deduper
	if cfg.RedisURL != "" {
		opt, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("Unable to parse Redis URL: %v", err)
		}
		redisClient := redis.NewClient(opt)

		ctx := context.Background()
		if err := redisClient.Ping(ctx).Err(); err != nil {
			log.Fatalf("Unable to connect to Redis: %v", err)
		}
		log.Println("Connected to Redis, webhook deduplication enabled")

		deduper = events.NewRedisDeduper(redisClient, time.Duration(cfg.DedupTTLHours)*time.Hour)
	}

	api := &apiConfig{
		provider: provider,
		verifier: provider,
		emitter:  emitter,
		deduper:  deduper,
		metrics:  metrics.New(prometheus.DefaultRegisterer),
	}

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/v1/payments/create-session", api.createPaymentSessionHandler)

	// Webhook route has no auth middleware; the Stripe signature is the auth.
	mux.HandleFunc("POST /api/v1/webhooks/stripe", api.stripeWebhookHandler)

	mux.HandleFunc("GET /healthz", api.healthHandler)
	mux.Handle("GET /metrics", metrics.Handler())

	handler := middlewareCors(RequestIDMiddleware(LoggingMiddleware(mux)))

	server := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: handler,
	}

	log.Printf("Server starting on port %s", cfg.Port)
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
