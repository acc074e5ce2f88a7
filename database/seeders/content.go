package seeders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"
	"wildhearts.link/repositories"

	"gopkg.in/yaml.v3"
)

// LoadContentFile YAML içerik dosyasını okur ve varsayılanlarla birleştirir.
// Dosyadaki anahtarlar JSON anahtarlarıyla aynıdır (coupleNames, weddingDate, ...).
func LoadContentFile(path string) (models.WeddingContent, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return models.DefaultContent(), fmt.Errorf("içerik dosyası okunamadı: %w", err)
	}
	return ParseContentYAML(raw)
}

// ParseContentYAML YAML belgesini varsayılanların üzerine yüzeysel olarak birleştirir.
func ParseContentYAML(raw []byte) (models.WeddingContent, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return models.DefaultContent(), fmt.Errorf("içerik YAML'ı çözülemedi: %w", err)
	}
	if doc == nil {
		return models.DefaultContent(), nil
	}
	payload, err := json.Marshal(doc)
	if err != nil {
		return models.DefaultContent(), fmt.Errorf("içerik JSON'a çevrilemedi: %w", err)
	}
	content, err := models.MergeOverDefaults(payload)
	if err != nil {
		return content, err
	}
	return content, content.Validate()
}

// SeedContent içerik satırı yoksa oluşturur. seedFile boşsa yerleşik varsayılan
// içerik yazılır. Mevcut satıra dokunulmaz.
func SeedContent(ctx context.Context, contents repositories.IContentRepository, seedFile string) error {
	_, err := contents.Find(ctx)
	if err == nil {
		configslog.SLog.Info("İçerik satırı zaten mevcut, içerik seed adımı atlanıyor.")
		return nil
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return err
	}

	content := models.DefaultContent()
	if seedFile != "" {
		loaded, err := LoadContentFile(seedFile)
		if err != nil {
			return err
		}
		content = loaded
		configslog.SLog.Infof("İçerik '%s' dosyasından yükleniyor.", seedFile)
	}

	row, err := models.NewContentRow(content)
	if err != nil {
		return err
	}
	if err := contents.Upsert(ctx, row); err != nil {
		return err
	}
	configslog.SLog.Infof("İçerik satırı oluşturuldu (%s & %s, %s).", content.CoupleNames.Partner1, content.CoupleNames.Partner2, content.WeddingDate)
	return nil
}
