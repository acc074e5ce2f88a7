package database

import (
	"context"
	"errors"
	"fmt"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/database/migrations"
	"wildhearts.link/database/seeders"
	"wildhearts.link/repositories"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Options veritabanı başlatma adımlarını seçer.
type Options struct {
	Migrate         bool
	Seed            bool
	ContentSeedFile string
}

// Initialize istenen adımları tek transaction içinde çalıştırır; herhangi bir
// adım başarısız olursa hepsi geri alınır.
func Initialize(db *gorm.DB, opts Options) (err error) {
	if !opts.Migrate && !opts.Seed {
		configslog.SLog.Info("Migrate veya seed bayrağı belirtilmedi, işlem yapılmayacak.")
		return nil
	}

	tx := db.Begin()
	if tx.Error != nil {
		configslog.Log.Error("Veritabanı transaction başlatılamadı", zap.Error(tx.Error))
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			err = fmt.Errorf("veritabanı başlatma işlemi başarısız oldu (panic): %v", r)
			configslog.Log.Error("Veritabanı başlatma işlemi başarısız oldu (panic)", zap.Any("panic_info", r))
			return
		}
		if err != nil {
			configslog.SLog.Warn("Başlatma sırasında hata oluştuğu için işlem geri alınıyor.")
			if rbErr := tx.Rollback().Error; rbErr != nil && !errors.Is(rbErr, gorm.ErrInvalidTransaction) {
				configslog.Log.Error("Rollback sırasında ek hata oluştu", zap.Error(rbErr))
			}
		}
	}()

	configslog.SLog.Info("Veritabanı başlatma işlemi başlıyor...")

	if opts.Migrate {
		configslog.SLog.Info("Migrasyonlar çalıştırılıyor...")
		if err := RunMigrationsInOrder(tx); err != nil {
			configslog.Log.Error("Migrasyon başarısız oldu", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Migrasyonlar tamamlandı.")
	} else {
		configslog.SLog.Info("Migrate bayrağı belirtilmedi, migrasyon adımı atlanıyor.")
	}

	if opts.Seed {
		configslog.SLog.Info("Seeder'lar çalıştırılıyor...")
		// Repository'ler ana bağlantıyla kurulur; transaction context ile taşınır.
		seedCtx := repositories.ContextWithTx(context.Background(), tx)
		if err := CheckAndRunSeeders(seedCtx, db, opts.ContentSeedFile); err != nil {
			configslog.Log.Error("Seeding başarısız oldu", zap.Error(err))
			return err
		}
		configslog.SLog.Info("Seeder'lar tamamlandı.")
	} else {
		configslog.SLog.Info("Seed bayrağı belirtilmedi, seeder adımı atlanıyor.")
	}

	configslog.SLog.Info("İşlem commit ediliyor...")
	if err := tx.Commit().Error; err != nil {
		configslog.Log.Error("Commit başarısız oldu", zap.Error(err))
		return err
	}

	configslog.SLog.Info("Veritabanı başlatma işlemi başarıyla tamamlandı")
	return nil
}

func RunMigrationsInOrder(db *gorm.DB) error {
	configslog.SLog.Info("Migrasyonlar sırayla çalıştırılıyor...")

	steps := []struct {
		name string
		run  func(*gorm.DB) error
	}{
		{"User", migrations.MigrateUsersTable},
		{"Content", migrations.MigrateContentTable},
		{"RSVP", migrations.MigrateRSVPTable},
		{"Guestbook", migrations.MigrateGuestbookTable},
	}
	for _, step := range steps {
		configslog.SLog.Infof(" -> %s migrasyonları çalıştırılıyor...", step.name)
		if err := step.run(db); err != nil {
			configslog.Log.Error("Migrasyon adımı başarısız oldu", zap.String("step", step.name), zap.Error(err))
			return err
		}
		configslog.SLog.Infof(" -> %s migrasyonları tamamlandı.", step.name)
	}

	configslog.SLog.Info("Tüm migrasyonlar başarıyla çalıştırıldı.")
	return nil
}

// CheckAndRunSeeders seeder'ları sırayla çalıştırır. ctx bir transaction taşıyorsa
// tüm yazmalar onun içinde yapılır.
func CheckAndRunSeeders(ctx context.Context, db *gorm.DB, contentSeedFile string) error {
	configslog.SLog.Info("Admin kullanıcısı kontrol ediliyor/oluşturuluyor/güncelleniyor...")
	if err := seeders.SeedAdminUser(ctx, repositories.NewUserRepository(db)); err != nil {
		configslog.Log.Error("Admin kullanıcısı seed/update işlemi başarısız", zap.Error(err))
		return err
	}

	configslog.SLog.Info(" -> İçerik seeder çalıştırılıyor...")
	if err := seeders.SeedContent(ctx, repositories.NewContentRepository(db), contentSeedFile); err != nil {
		configslog.Log.Error("İçerik seed edilemedi", zap.Error(err))
		return err
	}
	configslog.SLog.Info(" -> İçerik seeder tamamlandı.")

	configslog.SLog.Info("Tüm seeder'lar başarıyla kontrol edildi/çalıştırıldı.")
	return nil
}
