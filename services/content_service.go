package services

import (
	"context"
	"errors"
	"fmt"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"
	"wildhearts.link/repositories"

	"go.uber.org/zap"
)

// ContentServiceError içerik servisine özel hatalar.
type ContentServiceError string

func (e ContentServiceError) Error() string { return string(e) }

const (
	ErrContentInvalid    ContentServiceError = "geçersiz içerik"
	ErrContentSaveFailed ContentServiceError = "içerik kaydedilemedi"
)

// IContentService tekil düğün içeriği için arayüz.
type IContentService interface {
	LoadContent(ctx context.Context) models.WeddingContent
	ReplaceContent(ctx context.Context, content models.WeddingContent, updatingUserID uint) error
}

// ContentService IContentService arayüzünü uygular.
type ContentService struct {
	repo repositories.IContentRepository
}

// NewContentService yeni bir ContentService örneği oluşturur.
func NewContentService(repo repositories.IContentRepository) IContentService {
	return &ContentService{repo: repo}
}

// LoadContent kayıtlı içeriği varsayılanlarla birleştirip döndürür.
// Hiçbir zaman hata döndürmez: okuma hatası, eksik satır ya da bozuk JSON durumunda
// loglanır ve varsayılan içerik döner.
func (s *ContentService) LoadContent(ctx context.Context) models.WeddingContent {
	row, err := s.repo.Find(ctx)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			configslog.SLog.Info("İçerik satırı yok, varsayılan içerik kullanılıyor")
		} else {
			configslog.Log.Warn("İçerik okunamadı, varsayılan içerik kullanılıyor", zap.Error(err))
		}
		return models.DefaultContent()
	}

	content, err := models.MergeOverDefaults(row.Content)
	if err != nil {
		configslog.Log.Warn("Kayıtlı içerik çözülemedi, varsayılan içerik kullanılıyor", zap.Error(err))
		return models.DefaultContent()
	}
	return content
}

// ReplaceContent içeriği tek satır olarak bütünüyle yazar (upsert).
func (s *ContentService) ReplaceContent(ctx context.Context, content models.WeddingContent, updatingUserID uint) error {
	if err := content.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrContentInvalid, err)
	}
	row, err := models.NewContentRow(content)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrContentInvalid, err)
	}

	if updatingUserID != 0 {
		ctx = context.WithValue(ctx, models.ContextUserIDKey, updatingUserID)
	}
	if err := s.repo.Upsert(ctx, row); err != nil {
		configslog.Log.Error("İçerik kaydedilemedi", zap.Uint("userID", updatingUserID), zap.Error(err))
		return fmt.Errorf("%w: %v", ErrContentSaveFailed, err)
	}
	configslog.SLog.Infof("İçerik güncellendi (Güncelleyen: %d)", updatingUserID)
	return nil
}

var _ IContentService = (*ContentService)(nil)
