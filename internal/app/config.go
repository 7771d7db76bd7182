package app

import (
	"errors"
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds runtime configuration for the application.
type Config struct {
	AppEnv            string        `envconfig:"APP_ENV" default:"development"`
	AppAddr           string        `envconfig:"APP_ADDR" default:":8080"`
	AppReadTimeout    time.Duration `envconfig:"APP_READ_TIMEOUT" default:"15s"`
	AppWriteTimeout   time.Duration `envconfig:"APP_WRITE_TIMEOUT" default:"15s"`
	AppRequestTimeout time.Duration `envconfig:"APP_REQUEST_TIMEOUT" default:"30s"`

	LogFormat string `envconfig:"LOG_FORMAT" default:"pretty"`
	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`

	RedisAddr    string        `envconfig:"REDIS_ADDR" default:"127.0.0.1:6379"`
	CacheEnabled bool          `envconfig:"CACHE_ENABLED" default:"false"`
	CacheTTL     time.Duration `envconfig:"CACHE_TTL" default:"10m"`

	// LatencyEnabled turns on the simulated per-operation store delay.
	LatencyEnabled bool    `envconfig:"LATENCY_ENABLED" default:"true"`
	LatencyScale   float64 `envconfig:"LATENCY_SCALE" default:"1"`
	SeedFixtures   bool    `envconfig:"SEED_FIXTURES" default:"true"`

	JobsEnabled         bool   `envconfig:"JOBS_ENABLED" default:"false"`
	JobsConcurrency     int    `envconfig:"JOBS_CONCURRENCY" default:"5"`
	OverdueScanCron     string `envconfig:"OVERDUE_SCAN_CRON" default:"0 8 * * *"`
	DashboardWarmupCron string `envconfig:"DASHBOARD_WARMUP_CRON" default:"*/15 * * * *"`
	MailFrom            string `envconfig:"MAIL_FROM" default:"billing@billdesk.local"`

	RateLimitPerMinute int `envconfig:"RATE_LIMIT_PER_MINUTE" default:"120"`
}

// LoadConfig reads configuration from a .env file, when present, and the
// environment. Variables already set in the environment win.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.LatencyScale < 0 {
		return errors.New("latency scale must not be negative")
	}
	if c.UsesRedis() && c.RedisAddr == "" {
		return errors.New("redis address must be provided when cache or jobs are enabled")
	}
	if c.JobsConcurrency <= 0 {
		return fmt.Errorf("jobs concurrency must be positive, got %d", c.JobsConcurrency)
	}
	if c.RateLimitPerMinute < 0 {
		return fmt.Errorf("rate limit must not be negative, got %d", c.RateLimitPerMinute)
	}
	return nil
}

// IsProduction returns true when the application runs in production.
func (c *Config) IsProduction() bool {
	return c != nil && c.AppEnv == "production"
}

// UsesRedis reports whether any component needs the Redis connection.
func (c *Config) UsesRedis() bool {
	return c != nil && (c.CacheEnabled || c.JobsEnabled)
}
