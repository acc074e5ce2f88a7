package repositories

import (
	"context"
	"errors"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IGuestbookRepository ziyaretçi defteri kayıtları için arayüz.
type IGuestbookRepository interface {
	Create(ctx context.Context, entry *models.GuestbookEntry) error
	FindAllNewestFirst(ctx context.Context) ([]models.GuestbookEntry, error)
}

type GuestbookRepository struct {
	db *gorm.DB
}

func NewGuestbookRepository(db *gorm.DB) IGuestbookRepository {
	return &GuestbookRepository{db: db}
}

func (r *GuestbookRepository) Create(ctx context.Context, entry *models.GuestbookEntry) error {
	if entry == nil {
		return errors.New("eklenecek not nil olamaz")
	}
	entry.ID = 0
	if err := dbFromContext(ctx, r.db).Create(entry).Error; err != nil {
		configslog.Log.Error("GuestbookRepository.Create: DB error", zap.String("name", entry.Name), zap.Error(err))
		return err
	}
	return nil
}

func (r *GuestbookRepository) FindAllNewestFirst(ctx context.Context) ([]models.GuestbookEntry, error) {
	var entries []models.GuestbookEntry
	err := dbFromContext(ctx, r.db).Order("created_at desc").Order("id desc").Find(&entries).Error
	if err != nil {
		configslog.Log.Error("GuestbookRepository.FindAllNewestFirst: DB error", zap.Error(err))
		return nil, err
	}
	return entries, nil
}

var _ IGuestbookRepository = (*GuestbookRepository)(nil)
