package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const (
	PortEnv                   = "PORT"
	LogLevelEnv               = "LOG_LEVEL"
	DatabaseDriverEnv         = "DATABASE_DRIVER"
	SupabaseURLEnv            = "SUPABASE_URL"
	SupabaseServiceRoleKeyEnv = "SUPABASE_SERVICE_ROLE_KEY"
	DatabaseURLEnv            = "DATABASE_URL"
	MigrationsPathEnv         = "MIGRATIONS_PATH"
	ProductTableEnv           = "PRODUCT_TABLE"
	ProbeTimeoutEnv           = "PROBE_TIMEOUT"
	RateLimitRPSEnv           = "RATE_LIMIT_RPS"
	RateLimitBurstEnv         = "RATE_LIMIT_BURST"
	ShutdownTimeoutEnv        = "SHUTDOWN_TIMEOUT"
)

const (
	DriverSupabase = "supabase"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type DatabaseConfiguration struct {
	Driver         string
	SupabaseURL    string
	ServiceRoleKey string
	PostgresURL    string
	MigrationsPath string
	ProductTable   string
}

type RateLimitConfiguration struct {
	RPS   float64
	Burst int
}

func (c RateLimitConfiguration) Enabled() bool {
	return c.RPS > 0
}

type Config struct {
	Logger *zap.Logger

	Port            int
	ProbeTimeout    time.Duration
	ShutdownTimeout time.Duration

	Database  DatabaseConfiguration
	RateLimit RateLimitConfiguration
}

func Load() (Config, error) {
	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault(PortEnv, 8080)
	v.SetDefault(LogLevelEnv, "info")
	v.SetDefault(DatabaseDriverEnv, DriverSupabase)
	v.SetDefault(MigrationsPathEnv, "db/migrations")
	v.SetDefault(ProductTableEnv, "products")
	v.SetDefault(ProbeTimeoutEnv, "10s")
	v.SetDefault(RateLimitRPSEnv, 0)
	v.SetDefault(RateLimitBurstEnv, 20)
	v.SetDefault(ShutdownTimeoutEnv, "5s")

	logger, err := newLogger(v.GetString(LogLevelEnv))
	if err != nil {
		return Config{}, err
	}

	conf := Config{
		Logger:          logger,
		Port:            v.GetInt(PortEnv),
		ProbeTimeout:    v.GetDuration(ProbeTimeoutEnv),
		ShutdownTimeout: v.GetDuration(ShutdownTimeoutEnv),
		Database: DatabaseConfiguration{
			Driver:         strings.ToLower(strings.TrimSpace(v.GetString(DatabaseDriverEnv))),
			SupabaseURL:    v.GetString(SupabaseURLEnv),
			ServiceRoleKey: v.GetString(SupabaseServiceRoleKeyEnv),
			PostgresURL:    v.GetString(DatabaseURLEnv),
			MigrationsPath: v.GetString(MigrationsPathEnv),
			ProductTable:   v.GetString(ProductTableEnv),
		},
		RateLimit: RateLimitConfiguration{
			RPS:   v.GetFloat64(RateLimitRPSEnv),
			Burst: v.GetInt(RateLimitBurstEnv),
		},
	}

	if err := conf.validate(); err != nil {
		return Config{}, err
	}

	return conf, nil
}

func (c Config) validate() error {
	switch c.Database.Driver {
	case DriverSupabase:
		if c.Database.SupabaseURL == "" {
			return fmt.Errorf("%s is required for driver %q", SupabaseURLEnv, c.Database.Driver)
		}
		if c.Database.ServiceRoleKey == "" {
			return fmt.Errorf("%s is required for driver %q", SupabaseServiceRoleKeyEnv, c.Database.Driver)
		}
	case DriverPostgres:
		if c.Database.PostgresURL == "" {
			return fmt.Errorf("%s is required for driver %q", DatabaseURLEnv, c.Database.Driver)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unsupported %s: %q", DatabaseDriverEnv, c.Database.Driver)
	}

	if c.Database.ProductTable == "" {
		return fmt.Errorf("%s must not be empty", ProductTableEnv)
	}

	if c.Port <= 0 {
		return fmt.Errorf("invalid %s: %d", PortEnv, c.Port)
	}

	return nil
}

func newLogger(level string) (*zap.Logger, error) {
	var lvl zapcore.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(level))); err != nil {
		return nil, fmt.Errorf("invalid %s: %w", LogLevelEnv, err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = zap.NewAtomicLevelAt(lvl)

	return zapConfig.Build()
}
