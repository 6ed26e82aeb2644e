package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config carries every runtime knob of the service. Values come from the
// environment; a local .env file is honoured when present.
type Config struct {
	Env        string
	ListenAddr string

	DatabaseURL string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	DraftTTL      time.Duration

	PricingBaseURL string
	PricingTimeout time.Duration

	StripeAPIKey       string
	CheckoutSuccessURL string
	CheckoutCancelURL  string

	PollInterval    time.Duration
	PollMaxDuration time.Duration
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		Env:        envOrDefault("APP_ENV", "development"),
		ListenAddr: envOrDefault("LISTEN_ADDR", ":8080"),

		DatabaseURL: envOrDefault("DATABASE_URL", "stayfront.db"),

		RedisAddr:     envOrDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       envIntOrDefault("REDIS_DB", 0),
		DraftTTL:      envDurationOrDefault("DRAFT_TTL", 30*time.Minute),

		PricingBaseURL: envOrDefault("PRICING_BASE_URL", "http://localhost:9090"),
		PricingTimeout: envDurationOrDefault("PRICING_TIMEOUT", 5*time.Second),

		StripeAPIKey:       os.Getenv("STRIPE_API_KEY"),
		CheckoutSuccessURL: envOrDefault("CHECKOUT_SUCCESS_URL", "http://localhost:3000/booking/success"),
		CheckoutCancelURL:  envOrDefault("CHECKOUT_CANCEL_URL", "http://localhost:3000/booking/cancelled"),

		PollInterval:    envDurationOrDefault("PAYMENT_POLL_INTERVAL", 3*time.Second),
		PollMaxDuration: envDurationOrDefault("PAYMENT_POLL_MAX_DURATION", 15*time.Minute),
	}
}

func (c *Config) IsProduction() bool { return c.Env == "production" }

func envOrDefault(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

func envIntOrDefault(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func envDurationOrDefault(name string, def time.Duration) time.Duration {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
