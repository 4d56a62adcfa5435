package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

var (
	// ErrMissingConfig is returned when a required value is empty.
	ErrMissingConfig = errors.New("missing config data")
	// ErrUnsupportedDriver is returned for a DB_DRIVER other than sqlite or postgres.
	ErrUnsupportedDriver = errors.New("unsupported database driver")
)

// Config represents the application configuration.
type Config struct {
	AppPort      string
	DBDriver     string
	DatabaseDSN  string
	MaxOpenConns int
	RabbitMQURL  string
	Seed         bool
	LogLevel     string
}

// SetDefaults registers the default value of every key on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("DB_DRIVER", DriverSQLite)
	v.SetDefault("DATABASE_DSN", "toko.db")
	v.SetDefault("DB_MAX_OPEN_CONNS", 10)
	v.SetDefault("RABBITMQ_URL", "")
	v.SetDefault("SEED", false)
	v.SetDefault("LOG_LEVEL", "info")
}

// FromViper builds and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		AppPort:      v.GetString("APP_PORT"),
		DBDriver:     strings.ToLower(v.GetString("DB_DRIVER")),
		DatabaseDSN:  v.GetString("DATABASE_DSN"),
		MaxOpenConns: v.GetInt("DB_MAX_OPEN_CONNS"),
		RabbitMQURL:  v.GetString("RABBITMQ_URL"),
		Seed:         v.GetBool("SEED"),
		LogLevel:     v.GetString("LOG_LEVEL"),
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	return cfg, nil
}

// Load reads an optional .env file, then the environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	if err := godotenv.Load(envFiles...); err != nil {
		// the variables may be set some other way
		slog.Info("failed to load from .env", slog.Any("err", err))
	}

	v := viper.New()
	SetDefaults(v)
	v.AutomaticEnv()
	return FromViper(v)
}

func (c *Config) validate() error {
	for key, value := range map[string]string{
		"APP_PORT":     c.AppPort,
		"DATABASE_DSN": c.DatabaseDSN,
	} {
		if value == "" {
			return fmt.Errorf("%w for key: %s", ErrMissingConfig, key)
		}
	}
	switch c.DBDriver {
	case DriverSQLite, DriverPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnsupportedDriver, c.DBDriver)
	}
	if c.MaxOpenConns < 1 {
		return fmt.Errorf("DB_MAX_OPEN_CONNS must be positive, got %d", c.MaxOpenConns)
	}
	return nil
}
