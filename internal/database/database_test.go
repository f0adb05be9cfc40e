package database

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"sales-analytics/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/logger"
)

func TestNew_SQLite(t *testing.T) {
	cfg := &config.DatabaseConfig{
		Driver:          config.DatabaseDriverSQLite,
		SQLitePath:      filepath.Join(t.TempDir(), "sales.db"),
		MaxConnections:  1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Minute,
	}

	db, err := New(cfg, logger.Silent)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.AutoMigrate())
	require.NoError(t, db.CreateIndexes())
	assert.NoError(t, db.HealthCheck(context.Background()))
	assert.True(t, db.Migrator().HasTable("sales"))
	assert.True(t, db.Migrator().HasIndex("sales", "idx_sales_category_created_at"))
}

func TestNew_UnknownDriver(t *testing.T) {
	_, err := New(&config.DatabaseConfig{Driver: "mongodb"}, logger.Silent)

	assert.ErrorIs(t, err, config.ErrUnknownDatabaseDriver)
}

func TestInitialize_FallsBackToAutoMigrate(t *testing.T) {
	t.Setenv("AUTO_MIGRATE", "false")

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "testing"},
		Database: config.DatabaseConfig{
			Driver:         config.DatabaseDriverSQLite,
			SQLitePath:     filepath.Join(t.TempDir(), "sales.db"),
			MaxConnections: 1,
			MaxIdleConns:   1,
		},
	}

	db, err := Initialize(cfg)
	require.NoError(t, err)
	defer db.Close()

	assert.True(t, db.Migrator().HasTable("sales"))
}

func TestCleanupTestDB(t *testing.T) {
	db := SetupTestDB(t)
	CreateTestSale(t, db, "Books", "5.00", "3")

	CleanupTestDB(t, db)

	var count int64
	require.NoError(t, db.Table("sales").Count(&count).Error)
	assert.Zero(t, count)
}
