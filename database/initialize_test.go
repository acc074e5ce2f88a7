package database

import (
	"testing"

	"wildhearts.link/configs/configsdatabase"
	"wildhearts.link/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func openMemoryDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := configsdatabase.Open(configsdatabase.DBConfig{
		Driver:   configsdatabase.DriverSQLite,
		Path:     ":memory:",
		LogLevel: logger.Silent,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	return db
}

func TestInitialize_NoFlags(t *testing.T) {
	db := openMemoryDB(t)
	require.NoError(t, Initialize(db, Options{}))
	assert.False(t, db.Migrator().HasTable(&models.RSVPResponse{}))
}

func TestInitialize_MigrateAndSeed(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "trailhead42")
	db := openMemoryDB(t)

	require.NoError(t, Initialize(db, Options{Migrate: true, Seed: true}))

	for _, table := range []any{&models.User{}, &models.WeddingContentRow{}, &models.RSVPResponse{}, &models.GuestbookEntry{}} {
		assert.True(t, db.Migrator().HasTable(table))
	}

	var users int64
	require.NoError(t, db.Model(&models.User{}).Count(&users).Error)
	assert.Equal(t, int64(1), users)

	var row models.WeddingContentRow
	require.NoError(t, db.First(&row, models.ContentRowID).Error)
	merged, err := models.MergeOverDefaults(row.Content)
	require.NoError(t, err)
	assert.Equal(t, models.DefaultContent(), merged)
}

func TestInitialize_SeedFailureRollsBack(t *testing.T) {
	t.Setenv("ADMIN_EMAIL", "admin@example.com")
	t.Setenv("ADMIN_PASSWORD", "trailhead42")
	db := openMemoryDB(t)
	require.NoError(t, RunMigrationsInOrder(db))

	err := Initialize(db, Options{Seed: true, ContentSeedFile: "does-not-exist.yaml"})
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.WeddingContentRow{}).Count(&count).Error)
	assert.Zero(t, count)

	// Admin seeder transaction içinde yazdığı için o da geri alınır.
	require.NoError(t, db.Model(&models.User{}).Count(&count).Error)
	assert.Zero(t, count)
}
