package database_test

import (
	"testing"

	"inventory/internal/config"
	"inventory/internal/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenAndMigrate(t *testing.T) {
	cfg := &config.Config{DBDriver: config.DriverSQLite, DatabaseDSN: ":memory:", MaxOpenConns: 1}

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	for _, table := range []string{"category", "tag", "product", "product_tag"} {
		assert.True(t, db.Migrator().HasTable(table), "missing table %s", table)
	}
	assert.True(t, db.Migrator().HasIndex("product_tag", "idx_product_tag"))
}

func TestOpen_UnsupportedDriver(t *testing.T) {
	_, err := database.Open(&config.Config{DBDriver: "mysql", DatabaseDSN: "x", MaxOpenConns: 1})
	assert.ErrorIs(t, err, config.ErrUnsupportedDriver)
}

func TestSQLiteDSN(t *testing.T) {
	tests := []struct {
		dsn  string
		want string
	}{
		{dsn: "toko.db", want: "toko.db?_txlock=immediate&_busy_timeout=5000"},
		{dsn: "file:toko.db?cache=shared", want: "file:toko.db?cache=shared&_txlock=immediate&_busy_timeout=5000"},
		{dsn: "toko.db?_txlock=exclusive", want: "toko.db?_txlock=exclusive"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, database.SQLiteDSN(tt.dsn))
	}
}
