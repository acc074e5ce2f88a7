package repositories

import (
	"context"
	"errors"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IContentRepository tekil içerik satırı için arayüz.
type IContentRepository interface {
	Find(ctx context.Context) (*models.WeddingContentRow, error)
	Upsert(ctx context.Context, row *models.WeddingContentRow) error
}

// ContentRepository IContentRepository arayüzünü uygular.
type ContentRepository struct {
	db *gorm.DB
}

// NewContentRepository yeni bir ContentRepository örneği oluşturur.
func NewContentRepository(db *gorm.DB) IContentRepository {
	return &ContentRepository{db: db}
}

// Find tekil içerik satırını getirir. Satır yoksa ErrNotFound döner.
func (r *ContentRepository) Find(ctx context.Context) (*models.WeddingContentRow, error) {
	var row models.WeddingContentRow
	err := dbFromContext(ctx, r.db).First(&row, models.ContentRowID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("ContentRepository.Find: DB error", zap.Error(err))
		return nil, err
	}
	return &row, nil
}

// Upsert satırı bütün olarak yazar; varsa içeriği değiştirir, yoksa oluşturur.
// ID her zaman models.ContentRowID'ye sabitlenir.
func (r *ContentRepository) Upsert(ctx context.Context, row *models.WeddingContentRow) error {
	if row == nil || len(row.Content) == 0 {
		return errors.New("yazılacak içerik boş olamaz")
	}
	row.ID = models.ContentRowID
	err := dbFromContext(ctx, r.db).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{"content", "updated_at", "updated_by"}),
	}).Create(row).Error
	if err != nil {
		configslog.Log.Error("ContentRepository.Upsert: DB error", zap.Error(err))
		return err
	}
	return nil
}

var _ IContentRepository = (*ContentRepository)(nil)
