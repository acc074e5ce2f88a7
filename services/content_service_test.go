package services

import (
	"context"
	"testing"

	"wildhearts.link/models"
	"wildhearts.link/models/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_LoadContent_MissingRowReturnsDefaults(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{})
	assert.Equal(t, models.DefaultContent(), svc.LoadContent(context.Background()))
}

func TestContentService_LoadContent_StorageErrorReturnsDefaults(t *testing.T) {
	svc := NewContentService(&fakeContentRepo{findErr: errStorageDown})
	got := svc.LoadContent(context.Background())
	assert.Equal(t, models.DefaultContent(), got)
	assert.Equal(t, "Alex", got.CoupleNames.Partner1)
	assert.Equal(t, "Jordan", got.CoupleNames.Partner2)
	assert.Equal(t, "2024-08-15", got.WeddingDate)
}

func TestContentService_LoadContent_CorruptPayloadReturnsDefaults(t *testing.T) {
	repo := &fakeContentRepo{row: &models.WeddingContentRow{ID: 1, Content: helpers.JSONB(`{"heroQuote":`)}}
	assert.Equal(t, models.DefaultContent(), NewContentService(repo).LoadContent(context.Background()))
}

func TestContentService_LoadContent_MergesPartialRow(t *testing.T) {
	repo := &fakeContentRepo{row: &models.WeddingContentRow{
		ID:      1,
		Content: helpers.JSONB(`{"coupleNames":{"partner1":"Sam","partner2":"Riley"},"weddingDate":"2025-05-05"}`),
	}}

	got := NewContentService(repo).LoadContent(context.Background())

	assert.Equal(t, "Sam", got.CoupleNames.Partner1)
	assert.Equal(t, "2025-05-05", got.WeddingDate)
	def := models.DefaultContent()
	assert.Equal(t, def.HeroQuote, got.HeroQuote)
	assert.Equal(t, def.Timeline, got.Timeline)
	assert.Equal(t, def.Playlist, got.Playlist)
}

func TestContentService_ReplaceContent_WritesWholeRecord(t *testing.T) {
	repo := &fakeContentRepo{}
	svc := NewContentService(repo)
	content := models.NewContentEdit(models.DefaultContent()).HeroQuote("Onward").Build()

	require.NoError(t, svc.ReplaceContent(context.Background(), content, 3))
	assert.Equal(t, 1, repo.upserts)
	assert.Equal(t, uint(3), repo.lastCtx.Value(models.ContextUserIDKey))

	assert.Equal(t, content, svc.LoadContent(context.Background()))
}

func TestContentService_ReplaceContent_InvalidDate(t *testing.T) {
	repo := &fakeContentRepo{}
	content := models.DefaultContent()
	content.WeddingDate = "next summer"

	err := NewContentService(repo).ReplaceContent(context.Background(), content, 1)
	assert.ErrorIs(t, err, ErrContentInvalid)
	assert.Zero(t, repo.upserts)
}

func TestContentService_ReplaceContent_StorageFailure(t *testing.T) {
	repo := &fakeContentRepo{upsertErr: errStorageDown}
	err := NewContentService(repo).ReplaceContent(context.Background(), models.DefaultContent(), 1)
	assert.ErrorIs(t, err, ErrContentSaveFailed)
}
