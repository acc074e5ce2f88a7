package seeders

import (
	"context"
	"errors"
	"strings"

	"wildhearts.link/configs"
	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"
	"wildhearts.link/repositories"
	"wildhearts.link/services"

	"go.uber.org/zap"
)

// SeedAdminUser ADMIN_EMAIL ve ADMIN_PASSWORD ile admin kullanıcısını oluşturur ya
// da şifresini günceller. Değişkenler boşsa adım atlanır.
func SeedAdminUser(ctx context.Context, users repositories.IUserRepository) error {
	email := strings.ToLower(strings.TrimSpace(configs.GetEnv("ADMIN_EMAIL", "")))
	password := configs.GetEnv("ADMIN_PASSWORD", "")
	if email == "" || password == "" {
		configslog.SLog.Warn("ADMIN_EMAIL veya ADMIN_PASSWORD tanımlı değil, admin kullanıcı seed adımı atlanıyor.")
		return nil
	}

	hash, err := services.HashPassword(password)
	if err != nil {
		configslog.Log.Error("Admin şifresi hashlenemedi", zap.Error(err))
		return err
	}

	existing, err := users.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if err := users.UpdatePasswordHash(ctx, existing.ID, hash); err != nil {
			configslog.Log.Error("Admin şifresi güncellenemedi", zap.String("email", email), zap.Error(err))
			return err
		}
		configslog.SLog.Infof("Admin kullanıcı '%s' zaten mevcut, şifre güncellendi (ID: %d).", email, existing.ID)
		return nil
	case !errors.Is(err, repositories.ErrNotFound):
		configslog.Log.Error("Admin kullanıcı kontrol edilirken veritabanı hatası", zap.String("email", email), zap.Error(err))
		return err
	}

	user := models.User{
		Email:        email,
		PasswordHash: hash,
		Name:         configs.GetEnv("ADMIN_NAME", "Admin"),
	}
	if err := users.Create(ctx, &user); err != nil {
		configslog.Log.Error("Admin kullanıcı oluşturulamadı", zap.String("email", email), zap.Error(err))
		return err
	}
	configslog.SLog.Infof("Admin kullanıcı '%s' oluşturuldu (ID: %d).", email, user.ID)
	return nil
}
