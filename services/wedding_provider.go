package services

import (
	"context"
	"sync"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"

	"go.uber.org/zap"
)

// RSVPStats admin panelindeki özet sayılardır.
type RSVPStats struct {
	Responses    int `json:"responses"`
	Attending    int `json:"attending"`
	NotAttending int `json:"notAttending"`
	TotalGuests  int `json:"totalGuests"`
}

// WeddingProvider uygulamanın bellek içi durumunu tutar ve depolamaya giden tek yoldur.
// main içinde bir kez oluşturulur, Init ile doldurulur ve handler'lara verilir.
//
// Yerel durum sadece yazma başarılı olduktan sonra değişir.
type WeddingProvider struct {
	contentService    IContentService
	submissionService ISubmissionService

	mu         sync.RWMutex
	content    models.WeddingContent
	rsvps      []models.RSVPResponse
	guestbook  []models.GuestbookEntry
	loadErrors map[SubmissionKind]error
}

// NewWeddingProvider varsayılan içerikle başlayan bir provider döndürür.
func NewWeddingProvider(contentService IContentService, submissionService ISubmissionService) *WeddingProvider {
	return &WeddingProvider{
		contentService:    contentService,
		submissionService: submissionService,
		content:           models.DefaultContent(),
		rsvps:             []models.RSVPResponse{},
		guestbook:         []models.GuestbookEntry{},
		loadErrors:        map[SubmissionKind]error{},
	}
}

// Init içeriği ve iki listeyi yükler. Liste hataları sonuç olarak döner; uygulama
// yine de boş listelerle çalışmaya devam eder.
func (p *WeddingProvider) Init(ctx context.Context) (LoadResult[models.RSVPResponse], LoadResult[models.GuestbookEntry]) {
	content := p.contentService.LoadContent(ctx)
	rsvps := p.submissionService.LoadRSVPs(ctx)
	guestbook := p.submissionService.LoadGuestbook(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.content = content
	p.rsvps = rsvps.Items
	p.guestbook = guestbook.Items
	p.setLoadError(KindRSVP, rsvps.Err)
	p.setLoadError(KindGuestbook, guestbook.Err)

	configslog.SLog.Infof("Durum yüklendi: %d LCV, %d ziyaretçi notu", len(rsvps.Items), len(guestbook.Items))
	return rsvps, guestbook
}

// ReloadSubmissions iki listeyi depolamadan yeniden okur. Başarısız olan liste
// mevcut halini korur.
func (p *WeddingProvider) ReloadSubmissions(ctx context.Context) (LoadResult[models.RSVPResponse], LoadResult[models.GuestbookEntry]) {
	rsvps := p.submissionService.LoadRSVPs(ctx)
	guestbook := p.submissionService.LoadGuestbook(ctx)

	p.mu.Lock()
	defer p.mu.Unlock()
	if rsvps.OK() {
		p.rsvps = rsvps.Items
	}
	if guestbook.OK() {
		p.guestbook = guestbook.Items
	}
	p.setLoadError(KindRSVP, rsvps.Err)
	p.setLoadError(KindGuestbook, guestbook.Err)
	return rsvps, guestbook
}

func (p *WeddingProvider) setLoadError(kind SubmissionKind, err error) {
	if err == nil {
		delete(p.loadErrors, kind)
		return
	}
	p.loadErrors[kind] = err
}

// LastLoadError son yüklemede ilgili liste için oluşan hatayı döndürür.
func (p *WeddingProvider) LastLoadError(kind SubmissionKind) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.loadErrors[kind]
}

// Content içeriğin bir kopyasını döndürür.
func (p *WeddingProvider) Content() models.WeddingContent {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.content.Clone()
}

// RSVPs LCV listesinin (en yeni başta) kopyasını döndürür.
func (p *WeddingProvider) RSVPs() []models.RSVPResponse {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]models.RSVPResponse{}, p.rsvps...)
}

// Guestbook ziyaretçi defterinin (en yeni başta) kopyasını döndürür.
func (p *WeddingProvider) Guestbook() []models.GuestbookEntry {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return append([]models.GuestbookEntry{}, p.guestbook...)
}

// RSVPStats yanıt ve kişi sayılarını hesaplar.
func (p *WeddingProvider) RSVPStats() RSVPStats {
	p.mu.RLock()
	defer p.mu.RUnlock()
	stats := RSVPStats{Responses: len(p.rsvps)}
	for _, r := range p.rsvps {
		if r.Attending == models.RSVPStatusAttending {
			stats.Attending++
			stats.TotalGuests += r.PartySize()
		} else {
			stats.NotAttending++
		}
	}
	return stats
}

// ReplaceContent içeriği depolamaya yazar; yerel içerik sadece yazma başarılıysa değişir.
func (p *WeddingProvider) ReplaceContent(ctx context.Context, content models.WeddingContent, updatingUserID uint) error {
	content = content.Clone()
	if err := p.contentService.ReplaceContent(ctx, content, updatingUserID); err != nil {
		return err
	}
	p.mu.Lock()
	p.content = content
	p.mu.Unlock()
	return nil
}

// AppendRSVP LCV'yi ekler ve kaydedilen kaydı listenin başına koyar.
// Hata durumunda yerel liste değişmez.
func (p *WeddingProvider) AppendRSVP(ctx context.Context, rsvp models.RSVPResponse) (*models.RSVPResponse, error) {
	created, err := p.submissionService.AppendRSVP(ctx, rsvp)
	if err != nil {
		configslog.Log.Warn("LCV eklenemedi", zap.Error(err))
		return nil, err
	}
	p.mu.Lock()
	p.rsvps = append([]models.RSVPResponse{*created}, p.rsvps...)
	p.mu.Unlock()
	return created, nil
}

// AppendGuestbookEntry notu ekler ve kaydedileni listenin başına koyar.
func (p *WeddingProvider) AppendGuestbookEntry(ctx context.Context, entry models.GuestbookEntry) (*models.GuestbookEntry, error) {
	created, err := p.submissionService.AppendGuestbookEntry(ctx, entry)
	if err != nil {
		configslog.Log.Warn("Ziyaretçi notu eklenemedi", zap.Error(err))
		return nil, err
	}
	p.mu.Lock()
	p.guestbook = append([]models.GuestbookEntry{*created}, p.guestbook...)
	p.mu.Unlock()
	return created, nil
}

// FindRSVP onay kodunu depolamada arar. Onay ekranı misafirin gönderdiği kodu
// doğrulamadan göstermez.
func (p *WeddingProvider) FindRSVP(ctx context.Context, reference string) (*models.RSVPResponse, error) {
	return p.submissionService.FindRSVP(ctx, reference)
}
