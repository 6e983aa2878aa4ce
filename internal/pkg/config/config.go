package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (port, DB connection,
//   payment credentials) and anything security sensitive
// - default: Values common across all environments (timeouts, limits)
// -----------------------------------------------------------------------------

type Config struct {
	Server    ServerConfig
	DB        DBConfig
	CORS      CORSConfig
	Log       LogConfig
	Stripe    StripeConfig
	Mail      MailConfig
	Admin     AdminConfig
	RateLimit RateLimitConfig
	Retry     RetryConfig
}

type ServerConfig struct {
	Port string `envconfig:"PORT" required:"true"`
}

type DBConfig struct {
	Host     string `envconfig:"DB_HOST" default:"localhost"`
	Port     string `envconfig:"DB_PORT" default:"5432"`
	User     string `envconfig:"DB_USER" required:"true"`
	Password string `envconfig:"DB_PASSWORD" required:"true"`
	DBName   string `envconfig:"DB_NAME" required:"true"`
	SSLMode  string `envconfig:"DB_SSL_MODE" default:"disable"`
}

type CORSConfig struct {
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Stripe-Signature"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level          string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone       string `envconfig:"LOG_TIMEZONE" default:"UTC"`
	TimeFormat     string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
	TimeZoneOffset int    `envconfig:"LOG_TIMEZONE_OFFSET" default:"0"`
}

type StripeConfig struct {
	SecretKey     string        `envconfig:"STRIPE_SECRET_KEY" required:"true"`
	WebhookSecret string        `envconfig:"STRIPE_WEBHOOK_SECRET" required:"true"`
	ClientURL     string        `envconfig:"CLIENT_URL" required:"true"`
	Timeout       time.Duration `envconfig:"STRIPE_TIMEOUT" default:"10s"`
}

// MailConfig describes an ordered list of SMTP backends. Addrs are tried in
// sequence until one accepts the message; each attempt is bounded by Timeout.
type MailConfig struct {
	Addrs    []string      `envconfig:"SMTP_ADDRS" default:"localhost:587"`
	User     string        `envconfig:"SMTP_USER" default:""`
	Password string        `envconfig:"SMTP_PASSWORD" default:""`
	From     string        `envconfig:"MAIL_FROM" required:"true"`
	FromName string        `envconfig:"MAIL_FROM_NAME" default:"Zen Healing"`
	Timeout  time.Duration `envconfig:"SMTP_TIMEOUT" default:"5s"`
}

type AdminConfig struct {
	Email string `envconfig:"ADMIN_EMAIL" required:"true"`
}

type RateLimitConfig struct {
	RPS   float64       `envconfig:"RATE_LIMIT_RPS" default:"10"`
	Burst int           `envconfig:"RATE_LIMIT_BURST" default:"20"`
	TTL   time.Duration `envconfig:"RATE_LIMIT_TTL" default:"3m"`
}

// RetryConfig drives the dead-letter retry worker for failed notifications.
type RetryConfig struct {
	Interval    time.Duration `envconfig:"NOTIFY_RETRY_INTERVAL" default:"1m"`
	Backoff     time.Duration `envconfig:"NOTIFY_RETRY_BACKOFF" default:"2m"`
	MaxAttempts int32         `envconfig:"NOTIFY_RETRY_MAX_ATTEMPTS" default:"5"`
	BatchSize   int32         `envconfig:"NOTIFY_RETRY_BATCH_SIZE" default:"20"`
}

func (c *DBConfig) BuildDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.DBName, c.SSLMode,
	)
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		Server: ServerConfig{
			Port: "8889",
		},
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433",
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:          "error",
			TimeZone:       "UTC",
			TimeFormat:     "2006-01-02 15:04:05.000",
			TimeZoneOffset: 0,
		},
		Stripe: StripeConfig{
			SecretKey:     "sk_test_dummy",
			WebhookSecret: "whsec_test_dummy",
			ClientURL:     "http://localhost:3000",
			Timeout:       5 * time.Second,
		},
		Mail: MailConfig{
			Addrs:    []string{"localhost:1025"},
			From:     "noreply@example.com",
			FromName: "Zen Healing",
			Timeout:  2 * time.Second,
		},
		Admin: AdminConfig{
			Email: "admin@example.com",
		},
		RateLimit: RateLimitConfig{
			RPS:   1000,
			Burst: 1000,
			TTL:   time.Minute,
		},
		Retry: RetryConfig{
			Interval:    time.Second,
			Backoff:     time.Second,
			MaxAttempts: 3,
			BatchSize:   10,
		},
	}
}
