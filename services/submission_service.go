package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"wildhearts.link/configs/configslog"
	"wildhearts.link/models"
	"wildhearts.link/repositories"

	"go.uber.org/zap"
)

// SubmissionServiceError LCV ve ziyaretçi defteri hataları.
type SubmissionServiceError string

func (e SubmissionServiceError) Error() string { return string(e) }

const (
	ErrSubmissionInvalid       SubmissionServiceError = "geçersiz form verisi"
	ErrSubmissionNameRequired  SubmissionServiceError = "isim zorunludur"
	ErrSubmissionEmailInvalid  SubmissionServiceError = "geçerli bir e-posta adresi gerekli"
	ErrSubmissionStatusInvalid SubmissionServiceError = "katılım durumu seçilmeli"
	ErrSubmissionGuestsInvalid SubmissionServiceError = "kişi sayısı geçersiz"
	ErrSubmissionMessageNeeded SubmissionServiceError = "mesaj zorunludur"
	ErrSubmissionSaveFailed    SubmissionServiceError = "kayıt eklenemedi"
	ErrSubmissionLoadFailed    SubmissionServiceError = "kayıtlar yüklenemedi"
	ErrSubmissionNotFound      SubmissionServiceError = "LCV bulunamadı"
)

const (
	maxNameLength    = 150
	maxMessageLength = 4000
)

// SubmissionKind eklenebilir koleksiyon türü.
type SubmissionKind string

const (
	KindRSVP      SubmissionKind = "rsvps"
	KindGuestbook SubmissionKind = "guestbook"
)

// LoadResult bir liste yüklemesinin sonucudur: veri ya da hata nedeni.
type LoadResult[T any] struct {
	Kind  SubmissionKind
	Items []T
	Err   error
}

// OK yüklemenin başarılı olup olmadığını söyler.
func (r LoadResult[T]) OK() bool { return r.Err == nil }

// ISubmissionService sadece eklenen koleksiyonlar için arayüz.
type ISubmissionService interface {
	LoadRSVPs(ctx context.Context) LoadResult[models.RSVPResponse]
	LoadGuestbook(ctx context.Context) LoadResult[models.GuestbookEntry]
	AppendRSVP(ctx context.Context, rsvp models.RSVPResponse) (*models.RSVPResponse, error)
	AppendGuestbookEntry(ctx context.Context, entry models.GuestbookEntry) (*models.GuestbookEntry, error)
	FindRSVP(ctx context.Context, reference string) (*models.RSVPResponse, error)
}

// SubmissionService ISubmissionService arayüzünü uygular.
type SubmissionService struct {
	rsvpRepo      repositories.IRSVPRepository
	guestbookRepo repositories.IGuestbookRepository
	maxGuests     int
}

// NewSubmissionService yeni bir SubmissionService örneği oluşturur.
func NewSubmissionService(rsvpRepo repositories.IRSVPRepository, guestbookRepo repositories.IGuestbookRepository, maxGuests int) ISubmissionService {
	if maxGuests < 1 {
		maxGuests = 1
	}
	return &SubmissionService{rsvpRepo: rsvpRepo, guestbookRepo: guestbookRepo, maxGuests: maxGuests}
}

// ValidateRSVP alanları temizler ve kontrol eder. Kişi sayısı sadece katılımda doğrulanır;
// katılmayanlar için 1'e sabitlenir.
func ValidateRSVP(rsvp *models.RSVPResponse, maxGuests int) error {
	rsvp.Name = strings.TrimSpace(rsvp.Name)
	rsvp.Email = strings.TrimSpace(rsvp.Email)
	rsvp.Message = strings.TrimSpace(rsvp.Message)
	rsvp.DietaryRestrictions = strings.TrimSpace(rsvp.DietaryRestrictions)

	if rsvp.Name == "" || len(rsvp.Name) > maxNameLength {
		return ErrSubmissionNameRequired
	}
	if !models.ValidEmail(rsvp.Email) {
		return ErrSubmissionEmailInvalid
	}
	if !rsvp.Attending.IsValid() {
		return ErrSubmissionStatusInvalid
	}
	if rsvp.Attending == models.RSVPStatusAttending {
		if rsvp.Guests < 1 || rsvp.Guests > maxGuests {
			return fmt.Errorf("%w: 1 ile %d arasında olmalı", ErrSubmissionGuestsInvalid, maxGuests)
		}
	} else {
		rsvp.Guests = 1
	}
	if len(rsvp.Message) > maxMessageLength || len(rsvp.DietaryRestrictions) > maxMessageLength {
		return fmt.Errorf("%w: metin çok uzun", ErrSubmissionInvalid)
	}
	return nil
}

// ValidateGuestbookEntry alanları temizler ve kontrol eder.
func ValidateGuestbookEntry(entry *models.GuestbookEntry) error {
	entry.Name = strings.TrimSpace(entry.Name)
	entry.Message = strings.TrimSpace(entry.Message)
	entry.Location = strings.TrimSpace(entry.Location)

	if entry.Name == "" || len(entry.Name) > maxNameLength {
		return ErrSubmissionNameRequired
	}
	if entry.Message == "" {
		return ErrSubmissionMessageNeeded
	}
	if len(entry.Message) > maxMessageLength || len(entry.Location) > maxNameLength {
		return fmt.Errorf("%w: metin çok uzun", ErrSubmissionInvalid)
	}
	return nil
}

func (s *SubmissionService) LoadRSVPs(ctx context.Context) LoadResult[models.RSVPResponse] {
	items, err := s.rsvpRepo.FindAllNewestFirst(ctx)
	return newLoadResult(KindRSVP, items, err)
}

func (s *SubmissionService) LoadGuestbook(ctx context.Context) LoadResult[models.GuestbookEntry] {
	items, err := s.guestbookRepo.FindAllNewestFirst(ctx)
	return newLoadResult(KindGuestbook, items, err)
}

func newLoadResult[T any](kind SubmissionKind, items []T, err error) LoadResult[T] {
	if err != nil {
		configslog.Log.Warn("Liste yüklenemedi", zap.String("kind", string(kind)), zap.Error(err))
		return LoadResult[T]{Kind: kind, Items: []T{}, Err: fmt.Errorf("%w: %v", ErrSubmissionLoadFailed, err)}
	}
	if items == nil {
		items = []T{}
	}
	return LoadResult[T]{Kind: kind, Items: items}
}

// AppendRSVP tek bir LCV ekler ve kaydedilmiş halini (ID, zaman, onay kodu) döndürür.
// Kayıt zamanı her zaman sunucu tarafından atanır.
func (s *SubmissionService) AppendRSVP(ctx context.Context, rsvp models.RSVPResponse) (*models.RSVPResponse, error) {
	if err := ValidateRSVP(&rsvp, s.maxGuests); err != nil {
		return nil, err
	}
	rsvp.BaseModel = models.BaseModel{}
	rsvp.Reference = ""
	if err := s.rsvpRepo.Create(ctx, &rsvp); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionSaveFailed, err)
	}
	configslog.SLog.Infof("LCV alındı: ID %d, durum %s, kişi %d", rsvp.ID, rsvp.Attending, rsvp.Guests)
	return &rsvp, nil
}

// AppendGuestbookEntry tek bir ziyaretçi notu ekler.
func (s *SubmissionService) AppendGuestbookEntry(ctx context.Context, entry models.GuestbookEntry) (*models.GuestbookEntry, error) {
	if err := ValidateGuestbookEntry(&entry); err != nil {
		return nil, err
	}
	entry.BaseModel = models.BaseModel{}
	if err := s.guestbookRepo.Create(ctx, &entry); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSubmissionSaveFailed, err)
	}
	configslog.SLog.Infof("Ziyaretçi notu eklendi: ID %d", entry.ID)
	return &entry, nil
}

// FindRSVP onay koduyla kaydedilmiş LCV'yi getirir.
func (s *SubmissionService) FindRSVP(ctx context.Context, reference string) (*models.RSVPResponse, error) {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return nil, ErrSubmissionNotFound
	}
	rsvp, err := s.rsvpRepo.FindByReference(ctx, reference)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrSubmissionNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrSubmissionLoadFailed, err)
	}
	return rsvp, nil
}

var _ ISubmissionService = (*SubmissionService)(nil)
