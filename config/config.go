package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the storefront service.
type Config struct {
	Port string
	Env  string

	// Catalog database (hosted Postgres, read-only from this service)
	PostgresUser     string
	PostgresPassword string
	PostgresDB       string
	PostgresHost     string
	PostgresPort     string
	PostgresSSLMode  string

	RedisURL string
	CartTTL  time.Duration

	// Simulated payment processing delay and delivery estimate offset
	PaymentDelay     time.Duration
	DeliveryEstimate time.Duration

	// Optional order-event publishing; disabled when no brokers are set
	KafkaBrokers []string
	KafkaTopic   string
}

// Load reads configuration from the environment, loading a .env file
// first when one is present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Port: getEnv("PORT", "8080"),
		Env:  getEnv("ENV", "development"),

		PostgresUser:     getEnv("POSTGRES_USER", "postgres"),
		PostgresPassword: getEnv("POSTGRES_PASSWORD", ""),
		PostgresDB:       getEnv("POSTGRES_DB", "storefront"),
		PostgresHost:     getEnv("POSTGRES_HOST", "localhost"),
		PostgresPort:     getEnv("POSTGRES_PORT", "5432"),
		PostgresSSLMode:  getEnv("POSTGRES_SSLMODE", "require"),

		RedisURL: getEnv("REDIS_URL", "redis://localhost:6379"),
		CartTTL:  getDuration("CART_TTL", 24*time.Hour),

		PaymentDelay:     getDuration("PAYMENT_PROCESSING_DELAY", 2*time.Second),
		DeliveryEstimate: getDuration("DELIVERY_ESTIMATE_OFFSET", 45*time.Minute),

		KafkaBrokers: splitList(os.Getenv("KAFKA_BROKERS")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "order.confirmed"),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func getDuration(key string, defaultVal time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return defaultVal
	}
	if d, err := time.ParseDuration(val); err == nil {
		return d
	}
	// plain numbers are taken as seconds
	if n, err := strconv.Atoi(val); err == nil {
		return time.Duration(n) * time.Second
	}
	return defaultVal
}

func splitList(val string) []string {
	if val == "" {
		return nil
	}
	var out []string
	for _, s := range strings.Split(val, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
