package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	StoreFirebase = "firebase"
	StorePostgres = "postgres"
)

type Config struct {
	Env  string `validate:"required,oneof=development stage production"`
	Http Http

	Cors CORS `validate:"required"`

	Email    Email    `validate:"required"`
	Tracking Tracking `validate:"required"`
	Store    Store    `validate:"required"`
	Cache    Cache

	UpstreamTimeout time.Duration `validate:"gt=0"`

	Kafka Kafka

	Postgres Postgres `validate:"-"`
}

type Http struct {
	Host string `validate:"required,hostname|ip"`
	Port string `validate:"required,numeric"`
}

type CORS struct {
	AllowedOrigins []string `validate:"required,min=1,dive,url|eq=*"`
}

type Email struct {
	BaseURL string `validate:"required,url"`
	APIKey  string `validate:"required"`
	Sender  string `validate:"required"`
}

type Tracking struct {
	BaseURL string `validate:"required,url"`
	LogoURL string `validate:"required,url"`
	Brand   string `validate:"required"`
}

type Store struct {
	Driver    string `validate:"required,oneof=firebase postgres"`
	BaseURL   string `validate:"required_if=Driver firebase"`
	AuthToken string
}

type Cache struct {
	Capacity int           `validate:"gte=1"`
	TTL      time.Duration `validate:"gt=0"`
}

type Kafka struct {
	Enabled bool

	GroupID string   `validate:"required_if=Enabled true"`
	Brokers []string `validate:"required_if=Enabled true,dive,hostname_port"`
	Topic   string   `validate:"required_if=Enabled true"`

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

func New() Config {
	return Config{
		Env: env("ENV", "development"),

		Http: Http{
			Host: env("HOST", "0.0.0.0"),
			Port: env("PORT", "8080"),
		},

		Cors: CORS{
			AllowedOrigins: strings.Split(env("ALLOWED_CORS_ORIGINS", "*"), ","),
		},

		Email: Email{
			BaseURL: env("EMAIL_API_BASE_URL", "https://api.resend.com"),
			APIKey:  env("EMAIL_API_KEY", ""),
			Sender:  env("EMAIL_SENDER", "Lumbr <lumbr@lumbr.uk>"),
		},

		Tracking: Tracking{
			BaseURL: env("TRACKING_BASE_URL", "https://lumbr.uk/pages/track-order"),
			LogoURL: env("LOGO_URL", "https://lumbr.uk/logo.png"),
			Brand:   env("BRAND_NAME", "Lumbr"),
		},

		Store: Store{
			Driver:    env("STORE_DRIVER", StoreFirebase),
			BaseURL:   env("STORE_BASE_URL", ""),
			AuthToken: env("STORE_AUTH_TOKEN", ""),
		},

		Cache: Cache{
			Capacity: envInt("CACHE_CAPACITY", 1000),
			TTL:      envDuration("CACHE_TTL", 5*time.Minute),
		},

		UpstreamTimeout: envDuration("UPSTREAM_TIMEOUT", 10*time.Second),

		Kafka: Kafka{
			Enabled: envBool("KAFKA_ENABLED", false),
			GroupID: env("KAFKA_GROUP_ID", "order-notifier"),
			Topic:   env("KAFKA_TOPIC", "orders"),
			Brokers: strings.Split(env("KAFKA_BROKERS", "localhost:9092"), ","),

			ReaderMaxWait: envDuration("KAFKA_READER_MAX_WAIT", 10*time.Millisecond),
			BatchTimeout:  envDuration("KAFKA_BATCH_TIMEOUT", 10*time.Millisecond),
		},

		Postgres: Postgres{
			Port:     envInt("POSTGRES_PORT", 5432),
			Host:     env("POSTGRES_HOST", "localhost"),
			DBName:   env("POSTGRES_DB", "orders"),
			User:     env("POSTGRES_USER", ""),
			Password: env("POSTGRES_PASSWORD", ""),

			SSLMode: env("POSTGRES_SSL_MODE", "disable"),

			MaxOpenConns:    envInt("POSTGRES_MAX_OPEN_CONNS", 25),
			MaxIdleConns:    envInt("POSTGRES_MAX_IDLE_CONNS", 25),
			ConnMaxLifetime: envDuration("POSTGRES_CONN_MAX_LIFETIME", 5*time.Minute),
		},
	}
}

// Validate настройки Postgres проверяются только для драйвера postgres
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return err
	}
	if c.Store.Driver == StorePostgres {
		return validate.Struct(c.Postgres)
	}
	return nil
}

func env(key string, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
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

func envBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		b, err := strconv.ParseBool(value)
		if err == nil {
			return b
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
