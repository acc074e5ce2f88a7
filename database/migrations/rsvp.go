package migrations

import (
	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MigrateRSVPTable RSVPResponse modeli için tabloyu oluşturur/günceller.
func MigrateRSVPTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating rsvps table...")
	err := db.AutoMigrate(&models.RSVPResponse{})
	if err != nil {
		configslog.Log.Error("Failed to migrate rsvps table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Rsvps table migrated successfully")
	return nil
}
