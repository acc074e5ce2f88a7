package services

import (
	"context"
	"errors"
	"sync"
	"time"

	"wildhearts.link/models"
	"wildhearts.link/repositories"
)

var errStorageDown = errors.New("storage unreachable")

type fakeContentRepo struct {
	row       *models.WeddingContentRow
	findErr   error
	upsertErr error
	upserts   int
	lastCtx   context.Context
}

func (f *fakeContentRepo) Find(ctx context.Context) (*models.WeddingContentRow, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if f.row == nil {
		return nil, repositories.ErrNotFound
	}
	copied := *f.row
	return &copied, nil
}

func (f *fakeContentRepo) Upsert(ctx context.Context, row *models.WeddingContentRow) error {
	f.lastCtx = ctx
	if f.upsertErr != nil {
		return f.upsertErr
	}
	f.upserts++
	copied := *row
	f.row = &copied
	return nil
}

// fakeSubmissionRepo sunucunun ID ve zaman atamasını taklit eder.
type fakeSubmissionRepo struct {
	mu        sync.Mutex
	rsvps     []models.RSVPResponse
	guestbook []models.GuestbookEntry
	findErr   error
	createErr error
	nextID    uint
	clock     time.Time
}

func newFakeSubmissionRepo() *fakeSubmissionRepo {
	return &fakeSubmissionRepo{clock: time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)}
}

func (f *fakeSubmissionRepo) stamp(base *models.BaseModel) {
	f.nextID++
	f.clock = f.clock.Add(time.Minute)
	base.ID = f.nextID
	base.CreatedAt = f.clock
	base.UpdatedAt = f.clock
}

type fakeRSVPRepo struct{ *fakeSubmissionRepo }

func (f fakeRSVPRepo) Create(ctx context.Context, rsvp *models.RSVPResponse) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.stamp(&rsvp.BaseModel)
	if rsvp.Reference == "" {
		rsvp.Reference = "ref-" + rsvp.Email
	}
	f.rsvps = append([]models.RSVPResponse{*rsvp}, f.rsvps...)
	return nil
}

func (f fakeRSVPRepo) FindAllNewestFirst(ctx context.Context) ([]models.RSVPResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return append([]models.RSVPResponse(nil), f.rsvps...), nil
}

func (f fakeRSVPRepo) FindByReference(ctx context.Context, reference string) (*models.RSVPResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, r := range f.rsvps {
		if r.Reference == reference {
			copied := r
			return &copied, nil
		}
	}
	return nil, repositories.ErrNotFound
}

type fakeGuestbookRepo struct{ *fakeSubmissionRepo }

func (f fakeGuestbookRepo) Create(ctx context.Context, entry *models.GuestbookEntry) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	f.stamp(&entry.BaseModel)
	f.guestbook = append([]models.GuestbookEntry{*entry}, f.guestbook...)
	return nil
}

func (f fakeGuestbookRepo) FindAllNewestFirst(ctx context.Context) ([]models.GuestbookEntry, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return append([]models.GuestbookEntry(nil), f.guestbook...), nil
}

type fakeUserRepo struct {
	users   map[string]*models.User
	findErr error
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	if u, ok := f.users[email]; ok {
		return u, nil
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, repositories.ErrNotFound
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.users[user.Email] = user
	return nil
}

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id uint, hash string) error {
	return nil
}

// newTestProvider sahte depolarla bağlanmış bir provider kurar.
func newTestProvider(contentRepo *fakeContentRepo, subs *fakeSubmissionRepo) *WeddingProvider {
	return NewWeddingProvider(
		NewContentService(contentRepo),
		NewSubmissionService(fakeRSVPRepo{subs}, fakeGuestbookRepo{subs}, 4),
	)
}
