package migrations

import (
	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateContentTable tekil içerik satırının tablosunu oluşturur. Postgres'te
// içerik sütunu jsonb olur.
func MigrateContentTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating wedding_content table...")
	err := db.AutoMigrate(&models.WeddingContentRow{})
	if err != nil {
		configslog.Log.Error("Failed to migrate wedding_content table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Wedding_content table migrated successfully")
	return nil
}
