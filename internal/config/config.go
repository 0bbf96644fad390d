package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
)

type Config struct {
	ServerPort int
	LogLevel   string

	// Remote storefront API (catalog + auth).
	APIBaseURL string
	APITimeout time.Duration

	// Durable key-value store. SQLitePath is the default; DatabaseURL
	// switches the store to postgres when set.
	SQLitePath  string
	DatabaseURL string

	// Optional infrastructure.
	KafkaBrokers []string
	ESURL        string
	ESUser       string
	ESPassword   string

	// Checkout policy.
	FreeShippingThreshold decimal.Decimal
	ShippingFee           decimal.Decimal
	TaxRate               decimal.Decimal

	// Simulated payment gateway.
	PaymentDeclineRate float64
	PaymentDelay       time.Duration
	LastOrderTTL       time.Duration

	// "empty" or "placeholder", what the product list shows after a
	// failed fetch.
	ProductFallback string
}

func Load() Config {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("Notice: .env file not found: %v. Using system environment variables", err)
	}

	return Config{
		ServerPort: EnvIntDefault("SERVER_PORT", 8080),
		LogLevel:   EnvDefault("LOG_LEVEL", "info"),

		APIBaseURL: EnvDefault("API_BASE_URL", "https://fakestoreapi.com"),
		APITimeout: EnvDurationDefault("API_TIMEOUT", 10*time.Second),

		SQLitePath:  EnvDefault("SQLITE_PATH", "storefront.db"),
		DatabaseURL: os.Getenv("DATABASE_URL"),

		KafkaBrokers: CSV(os.Getenv("KAFKA_BROKERS")),
		ESURL:        os.Getenv("ES_URL"),
		ESUser:       os.Getenv("ES_USER"),
		ESPassword:   os.Getenv("ES_PASSWORD"),

		FreeShippingThreshold: EnvDecimalDefault("FREE_SHIPPING_THRESHOLD", "50"),
		ShippingFee:           EnvDecimalDefault("SHIPPING_FEE", "5.99"),
		TaxRate:               EnvDecimalDefault("TAX_RATE", "0.08"),

		PaymentDeclineRate: EnvFloatDefault("PAYMENT_DECLINE_RATE", 0.1),
		PaymentDelay:       EnvDurationDefault("PAYMENT_DELAY", 2*time.Second),
		LastOrderTTL:       EnvDurationDefault("LAST_ORDER_TTL", 5*time.Minute),

		ProductFallback: EnvDefault("PRODUCT_FALLBACK", "placeholder"),
	}
}

func CSV(v string) []string {
	if v == "" {
		return nil
	}
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if os.Getenv(key) != "" {
		return os.Getenv(key)
	}
	return def
}

func EnvIntDefault(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func EnvFloatDefault(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func EnvDurationDefault(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}

func EnvDecimalDefault(key, def string) decimal.Decimal {
	v := os.Getenv(key)
	if v == "" {
		v = def
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return decimal.RequireFromString(def)
	}
	return d
}
