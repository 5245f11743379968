package services

import (
	"testing"
	"time"

	"arenaapp_backend/database"
	"arenaapp_backend/internal/config"
	"arenaapp_backend/internal/listing"
	"arenaapp_backend/internal/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"

	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	// A single connection keeps every query on the same in-memory database.
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, database.Migrate(db))
	return db
}

func setupTestConfig(t *testing.T) {
	t.Helper()

	cfg := &config.Config{}
	cfg.Server.Env = "development"
	cfg.JWT.Secret = "test-secret"
	cfg.JWT.TTL = 60
	cfg.Catalog.SnapshotTTL = 300
	cfg.Catalog.RefreshSchedule = "@every 10m"
	cfg.Admin.Email = "admin@test.local"
	cfg.Admin.Password = "super-secret"
	cfg.Admin.Name = "Administrador"

	prev := config.AppConfig
	config.AppConfig = cfg
	t.Cleanup(func() { config.AppConfig = prev })
}

func seedListing(t *testing.T, db *gorm.DB, typ listing.Type, name string, mutate ...func(*models.Listing)) *models.Listing {
	t.Helper()

	row := &models.Listing{
		Type:      typ,
		Name:      name,
		Published: true,
	}
	for _, fn := range mutate {
		fn(row)
	}
	require.NoError(t, db.Create(row).Error)
	return row
}

func intp(v int) *int { return &v }

func mustParseDate(t *testing.T, value string) time.Time {
	t.Helper()
	parsed, err := time.Parse("2006-01-02", value)
	require.NoError(t, err)
	return parsed
}
