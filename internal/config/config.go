package config

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Kafka Kafka `validate:"required"`

	Postgres Postgres `validate:"required"`

	Gateway Gateway `validate:"required"`

	Worker Worker `validate:"required"`

	Shipping Shipping `validate:"required"`

	Cache Cache `validate:"required"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,gt=0,lte=65535"`
}

type Kafka struct {
	GroupID   string   `validate:"required"`
	Brokers   []string `validate:"required,min=1,dive,hostname_port"`
	JobsTopic string   `validate:"required"`
	// ReconTopic receives charge-without-order events; its consumer owns
	// the reconciliation cadence.
	ReconTopic string `validate:"required"`

	ReaderMaxWait time.Duration `validate:"gte=0"`
	BatchTimeout  time.Duration `validate:"gte=0"`
}

type Postgres struct {
	Host     string `validate:"required,hostname|ip"`
	Port     int    `validate:"required,gt=0,lte=65535"`
	DBName   string `validate:"required"`
	User     string `validate:"required"`
	Password string `validate:"required"`

	SSLMode string `validate:"required,oneof=disable require verify-ca verify-full"`

	MaxOpenConns    int           `validate:"gte=1"`
	MaxIdleConns    int           `validate:"gte=0"`
	ConnMaxLifetime time.Duration `validate:"gte=0"`
}

type Gateway struct {
	BaseURL string        `validate:"required,url"`
	APIKey  string        `validate:"required"`
	Timeout time.Duration `validate:"gt=0"`
}

type Worker struct {
	// Concurrency bounds the number of jobs in flight at once.
	Concurrency int64 `validate:"gte=1"`
	// JobTimeout bounds a single job end to end, gateway call included.
	JobTimeout time.Duration `validate:"gt=0"`
}

// Shipping holds the three independent rate tables and the tier
// boundaries. Rates are decimal strings so no precision is lost before
// they reach the calculator.
type Shipping struct {
	LightMaxKG    string `validate:"required"`
	StandardMaxKG string `validate:"required"`

	CountryRates map[string]string `validate:"required,min=1"`
	MethodRates  map[string]string `validate:"required,min=1"`
	TierRates    map[string]string `validate:"required,min=1"`
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url"`
}

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "localhost"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "http://localhost:3000"), ","),
		},

		Kafka: Kafka{
			GroupID:    env("KAFKA_GROUP_ID", "billing-service"),
			Brokers:    strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),
			JobsTopic:  env("KAFKA_JOBS_TOPIC", "billing-jobs"),
			ReconTopic: env("KAFKA_RECON_TOPIC", "billing-reconciliation"),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "billing"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},

		Gateway: Gateway{
			BaseURL: env("GATEWAY_BASE_URL", "http://localhost:9100"),
			APIKey:  env("GATEWAY_API_KEY", ""),
			Timeout: envDuration("GATEWAY_TIMEOUT", 10*time.Second),
		},

		Worker: Worker{
			Concurrency: int64(envInt("WORKER_CONCURRENCY", 8)),
			JobTimeout:  envDuration("WORKER_JOB_TIMEOUT", 30*time.Second),
		},

		Shipping: Shipping{
			LightMaxKG:    env("SHIPPING_LIGHT_MAX_KG", "1"),
			StandardMaxKG: env("SHIPPING_STANDARD_MAX_KG", "10"),

			CountryRates: envJSONMap("SHIPPING_COUNTRY_RATES",
				map[string]string{"US": "6.66", "CA": "8.20", "DE": "11.50", "FR": "11.50", "GB": "9.90"}),
			MethodRates: envJSONMap("SHIPPING_METHOD_RATES",
				map[string]string{"standard": "1", "express": "1.25", "next-day": "1.5"}),
			TierRates: envJSONMap("SHIPPING_TIER_RATES",
				map[string]string{"light": "0.8", "standard": "1", "heavy": "1.6"}),
		},

		Cache: Cache{
			Capacity: envInt("PRODUCT_CACHE_CAPACITY", 1000),
			TTL:      envDuration("PRODUCT_CACHE_TTL", time.Minute),
		},
	}
}

func (c Config) Validate() error {
	validate := validator.New()
	return validate.Struct(c)
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	if len(fallback) == 0 {
		return ""
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		i, err := strconv.Atoi(value)
		if err == nil {
			return i
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err == nil {
			return d
		}
	}
	return fallback
}

func envJSONMap(key string, fallback map[string]string) map[string]string {
	if value, ok := os.LookupEnv(key); ok {
		m := make(map[string]string)
		if err := json.Unmarshal([]byte(value), &m); err == nil {
			return m
		}
	}
	return fallback
}
