package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (DB connection, security settings)
// - default: Values common across all environments (ports, timeouts, standard settings)
// -----------------------------------------------------------------------------

type Config struct {
	Rules        ServiceConfig `envconfig:"RULES"`
	Availability ServiceConfig `envconfig:"AVAILABILITY"`
	Invoice      ServiceConfig `envconfig:"INVOICE"`
	Payment      ServiceConfig `envconfig:"PAYMENT"`
	DB           DBConfig
	CORS         CORSConfig
	Log          LogConfig
	Pipeline     PipelineConfig
	Location     LocationConfig
}

// LocationConfig pins the deployment to one location; all rule resolution
// and availability lookups are scoped to it.
type LocationConfig struct {
	ID int64 `envconfig:"LOCATION_ID" default:"1"`
}

type ServiceConfig struct {
	Port string `envconfig:"PORT"`
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
	AllowOrigins     []string      `envconfig:"CORS_ALLOW_ORIGINS" default:"http://localhost:3000,http://localhost:8080"`
	AllowMethods     []string      `envconfig:"CORS_ALLOW_METHODS" default:"GET,POST,PUT,PATCH,DELETE,OPTIONS"`
	AllowHeaders     []string      `envconfig:"CORS_ALLOW_HEADERS" default:"Origin,Content-Type,Accept,Authorization"`
	ExposeHeaders    []string      `envconfig:"CORS_EXPOSE_HEADERS" default:"Content-Length"`
	AllowCredentials bool          `envconfig:"CORS_ALLOW_CREDENTIALS" default:"true"`
	MaxAge           time.Duration `envconfig:"CORS_MAX_AGE" default:"12h"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

// PipelineConfig drives the payment-to-booking pipeline: how often the
// booking job worker polls, where confirmBooking lives, and how old a paid
// but unlinked invoice may grow before the reconciliation pass flags it.
type PipelineConfig struct {
	BookingServiceURL string        `envconfig:"BOOKING_SERVICE_URL" default:"http://localhost:8081"`
	PollInterval      time.Duration `envconfig:"PIPELINE_POLL_INTERVAL" default:"500ms"`
	MaxAttempts       int           `envconfig:"PIPELINE_MAX_ATTEMPTS" default:"5"`
	ReconcileSpec     string        `envconfig:"PIPELINE_RECONCILE_SPEC" default:"@every 1m"`
	ReconcileSLO      time.Duration `envconfig:"PIPELINE_RECONCILE_SLO" default:"1m"`
	RequestTimeout    time.Duration `envconfig:"PIPELINE_REQUEST_TIMEOUT" default:"10s"`
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
	applyPortDefaults(&cfg)
	return cfg, nil
}

// Default port layout: rules 8080, availability 8081, invoice 8082,
// payment 8083.
func applyPortDefaults(cfg *Config) {
	if cfg.Rules.Port == "" {
		cfg.Rules.Port = "8080"
	}
	if cfg.Availability.Port == "" {
		cfg.Availability.Port = "8081"
	}
	if cfg.Invoice.Port == "" {
		cfg.Invoice.Port = "8082"
	}
	if cfg.Payment.Port == "" {
		cfg.Payment.Port = "8083"
	}
}

func NewTestConfig() Config {
	cfg := Config{
		DB: DBConfig{
			Host:     "localhost",
			Port:     "15433", // Test DB port
			User:     "test",
			Password: "test",
			DBName:   "test_db",
			SSLMode:  "disable",
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeFormat: "2006-01-02 15:04:05.000",
		},
		Pipeline: PipelineConfig{
			BookingServiceURL: "http://localhost:18081",
			PollInterval:      50 * time.Millisecond,
			MaxAttempts:       3,
			ReconcileSpec:     "@every 1s",
			ReconcileSLO:      time.Second,
			RequestTimeout:    time.Second,
		},
		Location: LocationConfig{ID: 1},
	}
	applyPortDefaults(&cfg)
	return cfg
}
