package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config is the full runtime configuration of the API server.
type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth     AuthConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	Earnings EarningsConfig
}

type AuthConfig struct {
	JWTSecret   string        `env:"JWT_SECRET,   required"`
	AdminSecret string        `env:"ADMIN_SECRET, required"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,    default=30m"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, required"`
	Database string `env:"MONGO_DB,  required"`
}

// RedisConfig is optional. An empty Addr disables the submission
// idempotency store.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB, default=0"`
}

// Enabled reports whether a Redis address was configured.
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

type EarningsConfig struct {
	Rate int64 `env:"EARNINGS_RATE, default=50"`
}

// ProvisionConfig is the subset needed by the provision-admin command.
type ProvisionConfig struct {
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Mongo MongoConfig
}

// IsDevelopment reports whether ENV selects the development profile.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	return load(ctx, envconfig.OsLookuper())
}

// LoadProvision reads the configuration used by provision-admin.
func LoadProvision(ctx context.Context) (*ProvisionConfig, error) {
	var cfg ProvisionConfig
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: envconfig.OsLookuper(),
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

func load(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.Auth.TokenTTL < 0 {
		return nil, fmt.Errorf("config: TOKEN_TTL must not be negative, got %s", cfg.Auth.TokenTTL)
	}
	if cfg.Earnings.Rate < 0 {
		return nil, fmt.Errorf("config: EARNINGS_RATE must not be negative, got %d", cfg.Earnings.Rate)
	}
	return &cfg, nil
}
