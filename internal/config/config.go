package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Environment string

const (
	Development Environment = "development"
	Staging     Environment = "staging"
	Production  Environment = "production"
)

type Config struct {
	Environment Environment
	Port        string

	StripeSecretKey     string
	StripeWebhookSecret string
	StripeSuccessURL    string
	StripeCancelURL     string

	// Comma-separated broker list; empty disables Kafka and confirmations
	// are logged instead.
	KafkaBrokers       string
	PaymentEventsTopic string

	// Optional; empty disables webhook deduplication.
	RedisURL      string
	DedupTTLHours int
}

func Load() (*Config, error) {
	env := os.Getenv("ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if env != "production" {
		if err := godotenv.Load(); err != nil {
			if err := godotenv.Load("../../.env"); err != nil {
				log.Println("Warning: .env file not found")
			}
		}
	}

	cfg := &Config{
		Environment: Environment(env),
		Port:        getEnv("PORT", "8080"),

		StripeSecretKey:     getEnv("STRIPE_SECRET_KEY", ""),
		StripeWebhookSecret: getEnv("STRIPE_WEBHOOK_SECRET", ""),
		StripeSuccessURL:    getEnv("STRIPE_SUCCESS_URL", "http://localhost:3000/payments/success"),
		StripeCancelURL:     getEnv("STRIPE_CANCEL_URL", "http://localhost:3000/payments/cancel"),

		KafkaBrokers:       getEnv("KAFKA_BROKERS", ""),
		PaymentEventsTopic: getEnv("PAYMENT_EVENTS_TOPIC", "payment.succeeded"),

		RedisURL:      getEnv("REDIS_URL", ""),
		DedupTTLHours: getEnvAsInt("DEDUP_TTL_HOURS", 72),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.StripeSecretKey == "" {
		return fmt.Errorf("STRIPE_SECRET_KEY is required")
	}
	if c.StripeWebhookSecret == "" {
		return fmt.Errorf("STRIPE_WEBHOOK_SECRET is required")
	}
	if c.DedupTTLHours < 1 {
		return fmt.Errorf("DEDUP_TTL_HOURS must be at least 1")
	}
	return nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == Production
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return fallback
}
