package repositories

import (
	"context"
	"errors"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// IRSVPRepository LCV kayıtları için arayüz. Kayıtlar sadece eklenir.
type IRSVPRepository interface {
	Create(ctx context.Context, rsvp *models.RSVPResponse) error
	FindAllNewestFirst(ctx context.Context) ([]models.RSVPResponse, error)
	FindByReference(ctx context.Context, reference string) (*models.RSVPResponse, error)
}

// RSVPRepository IRSVPRepository arayüzünü uygular.
type RSVPRepository struct {
	db *gorm.DB
}

// NewRSVPRepository yeni bir RSVPRepository örneği oluşturur.
func NewRSVPRepository(db *gorm.DB) IRSVPRepository {
	return &RSVPRepository{db: db}
}

// Create yeni LCV kaydı ekler. ID, CreatedAt ve Reference yazma sırasında doldurulur.
func (r *RSVPRepository) Create(ctx context.Context, rsvp *models.RSVPResponse) error {
	if rsvp == nil {
		return errors.New("eklenecek LCV nil olamaz")
	}
	rsvp.ID = 0
	if err := dbFromContext(ctx, r.db).Create(rsvp).Error; err != nil {
		configslog.Log.Error("RSVPRepository.Create: DB error", zap.String("email", rsvp.Email), zap.Error(err))
		return err
	}
	return nil
}

// FindAllNewestFirst tüm LCV'leri en yeniden eskiye sıralı getirir.
func (r *RSVPRepository) FindAllNewestFirst(ctx context.Context) ([]models.RSVPResponse, error) {
	var rsvps []models.RSVPResponse
	err := dbFromContext(ctx, r.db).Order("created_at desc").Order("id desc").Find(&rsvps).Error
	if err != nil {
		configslog.Log.Error("RSVPRepository.FindAllNewestFirst: DB error", zap.Error(err))
		return nil, err
	}
	return rsvps, nil
}

// FindByReference onay kodu ile LCV'yi bulur.
func (r *RSVPRepository) FindByReference(ctx context.Context, reference string) (*models.RSVPResponse, error) {
	if reference == "" {
		return nil, errors.New("onay kodu boş olamaz")
	}
	var rsvp models.RSVPResponse
	err := dbFromContext(ctx, r.db).Where("reference = ?", reference).First(&rsvp).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		configslog.Log.Error("RSVPRepository.FindByReference: DB error", zap.String("reference", reference), zap.Error(err))
		return nil, err
	}
	return &rsvp, nil
}

var _ IRSVPRepository = (*RSVPRepository)(nil)
