// Package config loads the service configuration from an optional env file
// and the process environment.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// DefaultJWTSecret is the development fallback for JWT_SECRET_KEY.
const DefaultJWTSecret = "site-content-api-dev-secret"

// Config holds the application configuration.
type Config struct {
	AppHost  string `env:"APP_HOST" envDefault:"localhost"`
	AppPort  string `env:"APP_PORT" envDefault:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" envDefault:"info"`

	DBDriver       string `env:"DB_DRIVER" envDefault:"sqlite"`
	DBDSN          string `env:"DB_DSN" envDefault:"database.db"`
	DBMaxOpenConns int    `env:"DB_MAX_OPEN_CONNS" envDefault:"16"`
	DBMaxIdleConns int    `env:"DB_MAX_IDLE_CONNS" envDefault:"8"`
	DBSeed         bool   `env:"DB_SEED" envDefault:"true"`

	DBConnMaxLifetime time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"30m"`

	JWTSecretKey string        `env:"JWT_SECRET_KEY"`
	JWTExp       time.Duration `env:"JWT_EXP" envDefault:"15m"`

	UploadsDir       string `env:"UPLOADS_DIR" envDefault:"uploads"`
	MaxContentLength int64  `env:"MAX_CONTENT_LENGTH" envDefault:"16777216"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`

	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`
	RedisDB       int    `env:"REDIS_DB" envDefault:"0"`

	KafkaBrokers      []string `env:"KAFKA_BROKERS" envSeparator:","`
	KafkaContactTopic string   `env:"KAFKA_CONTACT_TOPIC" envDefault:"contact-messages"`
}

// Load reads variables from the env file at path (a missing file is not an
// error) and parses the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.JWTSecretKey == "" {
		cfg.JWTSecretKey = DefaultJWTSecret
	}

	switch cfg.DBDriver {
	case "sqlite", "pgx":
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q: expected sqlite or pgx", cfg.DBDriver)
	}

	if cfg.MaxContentLength <= 0 {
		return nil, fmt.Errorf("MAX_CONTENT_LENGTH must be positive, got %d", cfg.MaxContentLength)
	}

	return cfg, nil
}

// Addr returns the HTTP listen address in host:port form.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}

// UseRedis reports whether token revocation is backed by Redis.
func (c *Config) UseRedis() bool {
	return c.RedisAddr != ""
}

// UseKafka reports whether contact submissions are published to Kafka.
func (c *Config) UseKafka() bool {
	return len(c.KafkaBrokers) > 0
}

// UsesDefaultSecret reports whether the JWT secret was left at its
// development default.
func (c *Config) UsesDefaultSecret() bool {
	return c.JWTSecretKey == DefaultJWTSecret
}
