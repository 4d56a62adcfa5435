package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"inventory/internal/config"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromViper_Defaults(t *testing.T) {
	v := viper.New()
	config.SetDefaults(v)

	cfg, err := config.FromViper(v)
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverSQLite, cfg.DBDriver)
	assert.Equal(t, "toko.db", cfg.DatabaseDSN)
	assert.Equal(t, 10, cfg.MaxOpenConns)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.False(t, cfg.Seed)
}

func TestFromViper_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   interface{}
		wantErr error
	}{
		{name: "empty dsn", key: "DATABASE_DSN", value: "", wantErr: config.ErrMissingConfig},
		{name: "empty port", key: "APP_PORT", value: "", wantErr: config.ErrMissingConfig},
		{name: "unknown driver", key: "DB_DRIVER", value: "mysql", wantErr: config.ErrUnsupportedDriver},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := viper.New()
			config.SetDefaults(v)
			v.Set(tt.key, tt.value)

			_, err := config.FromViper(v)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}

	v := viper.New()
	config.SetDefaults(v)
	v.Set("DB_MAX_OPEN_CONNS", 0)
	_, err := config.FromViper(v)
	assert.Error(t, err)
}

func TestLoad_EnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("DB_DRIVER=postgres\nDATABASE_DSN=\"host=db user=toko\"\nSEED=true\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("DB_DRIVER")
		os.Unsetenv("DATABASE_DSN")
		os.Unsetenv("SEED")
	})

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DriverPostgres, cfg.DBDriver)
	assert.Equal(t, "host=db user=toko", cfg.DatabaseDSN)
	assert.True(t, cfg.Seed)
}
