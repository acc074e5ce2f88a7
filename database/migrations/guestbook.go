package migrations

import (
	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

func MigrateGuestbookTable(db *gorm.DB) error {
	configslog.SLog.Info("Migrating guestbook table...")
	err := db.AutoMigrate(&models.GuestbookEntry{})
	if err != nil {
		configslog.Log.Error("Failed to migrate guestbook table", zap.Error(err))
		return err
	}
	configslog.SLog.Info("Guestbook table migrated successfully")
	return nil
}
