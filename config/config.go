package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
)

const (
	DBPostgres = "postgres"
	DBMemory   = "memory"

	CounterPostgres = "postgres"
	CounterRedis    = "redis"
)

type Config struct {
	Port   string `envconfig:"PORT" default:"8080"`
	DBType string `envconfig:"DB_TYPE" default:"postgres"`

	PostgresURL       string        `envconfig:"POSTGRES_URL"`
	MigrationsPath    string        `envconfig:"MIGRATIONS_PATH" default:"file://db/migrations"`
	DBMaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"10"`
	DBMaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"2"`
	DBConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"30m"`
	DBConnMaxIdleTime time.Duration `envconfig:"DB_CONN_MAX_IDLE_TIME" default:"30s"`

	MongoURL      string `envconfig:"MONGO_URL"`
	MongoDatabase string `envconfig:"MONGO_DATABASE" default:"mptransport"`

	CounterBackend string `envconfig:"COUNTER_BACKEND" default:"postgres"`
	RedisAddr      string `envconfig:"REDIS_ADDR"`
	RedisPassword  string `envconfig:"REDIS_PASSWORD"`
	RedisDB        int    `envconfig:"REDIS_DB" default:"0"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	ReadTimeout        time.Duration `envconfig:"READ_TIMEOUT" default:"15s"`
	WriteTimeout       time.Duration `envconfig:"WRITE_TIMEOUT" default:"60s"`
	RequestTimeout     time.Duration `envconfig:"REQUEST_TIMEOUT" default:"45s"`
	ShutdownTimeout    time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"10s"`
	RateLimitPerMinute int           `envconfig:"RATE_LIMIT_PER_MINUTE" default:"300"`

	PDFSavePath       string `envconfig:"PDF_SAVE_PATH" default:"./pdfs"`
	R2Bucket          string `envconfig:"R2_BUCKET"`
	R2AccountID       string `envconfig:"R2_ACCOUNT_ID"`
	R2PublicURL       string `envconfig:"R2_PUBLIC_URL"`
	R2AccessKeyID     string `envconfig:"R2_ACCESS_KEY_ID"`
	R2SecretAccessKey string `envconfig:"R2_SECRET_ACCESS_KEY"`

	DefaultAdminName     string `envconfig:"DEFAULT_ADMIN_NAME"`
	DefaultAdminPassword string `envconfig:"DEFAULT_ADMIN_PASSWORD"`
	DefaultAdminMobile   string `envconfig:"DEFAULT_ADMIN_MOBILE" default:"0000000000"`
}

// LoadConfig reads .env when present, then the process environment.
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	cfg := &Config{}
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}
	cfg.DBType = strings.ToLower(strings.TrimSpace(cfg.DBType))
	cfg.CounterBackend = strings.ToLower(strings.TrimSpace(cfg.CounterBackend))
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.DBType {
	case DBPostgres:
		if c.PostgresURL == "" {
			return fmt.Errorf("POSTGRES_URL is required when DB_TYPE=%s", DBPostgres)
		}
	case DBMemory:
	default:
		return fmt.Errorf("unsupported DB_TYPE %q", c.DBType)
	}
	switch c.CounterBackend {
	case CounterPostgres:
	case CounterRedis:
		if c.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required when COUNTER_BACKEND=%s", CounterRedis)
		}
	default:
		return fmt.Errorf("unsupported COUNTER_BACKEND %q", c.CounterBackend)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("unsupported LOG_FORMAT %q", c.LogFormat)
	}
	if _, err := logrus.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("LOG_LEVEL: %w", err)
	}
	if (c.DefaultAdminName == "") != (c.DefaultAdminPassword == "") {
		return fmt.Errorf("DEFAULT_ADMIN_NAME and DEFAULT_ADMIN_PASSWORD must be set together")
	}
	return nil
}

// NewLogger builds the process logger from the log settings.
func NewLogger(c *Config) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stdout)
	if c.LogFormat == "text" {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		log.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
