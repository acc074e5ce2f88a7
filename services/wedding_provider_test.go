package services

import (
	"context"
	"testing"

	"wildhearts.link/models"
	"wildhearts.link/models/helpers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeddingProvider_InitEmptyBackendUsesDefaults(t *testing.T) {
	p := newTestProvider(&fakeContentRepo{}, newFakeSubmissionRepo())

	rsvps, guestbook := p.Init(context.Background())

	assert.True(t, rsvps.OK())
	assert.True(t, guestbook.OK())
	assert.Equal(t, models.DefaultContent(), p.Content())
	assert.Empty(t, p.RSVPs())
	assert.Empty(t, p.Guestbook())
}

func TestWeddingProvider_InitUnreachableBackend(t *testing.T) {
	subs := newFakeSubmissionRepo()
	subs.findErr = errStorageDown
	p := newTestProvider(&fakeContentRepo{findErr: errStorageDown}, subs)

	rsvps, guestbook := p.Init(context.Background())

	assert.Equal(t, models.DefaultContent(), p.Content())
	assert.ErrorIs(t, rsvps.Err, ErrSubmissionLoadFailed)
	assert.ErrorIs(t, guestbook.Err, ErrSubmissionLoadFailed)
	assert.ErrorIs(t, p.LastLoadError(KindRSVP), ErrSubmissionLoadFailed)
	assert.ErrorIs(t, p.LastLoadError(KindGuestbook), ErrSubmissionLoadFailed)
	assert.Empty(t, p.RSVPs())
}

func TestWeddingProvider_InitLoadsStoredState(t *testing.T) {
	subs := newFakeSubmissionRepo()
	ctx := context.Background()
	require.NoError(t, fakeGuestbookRepo{subs}.Create(ctx, &models.GuestbookEntry{Name: "Pat", Message: "Yay"}))
	repo := &fakeContentRepo{row: &models.WeddingContentRow{ID: 1, Content: helpers.JSONB(`{"heroQuote":"Onward"}`)}}

	p := newTestProvider(repo, subs)
	p.Init(ctx)

	assert.Equal(t, "Onward", p.Content().HeroQuote)
	require.Len(t, p.Guestbook(), 1)
	assert.Equal(t, "Pat", p.Guestbook()[0].Name)
}

func TestWeddingProvider_AppendRSVP_PrependsConfirmedRecord(t *testing.T) {
	subs := newFakeSubmissionRepo()
	p := newTestProvider(&fakeContentRepo{}, subs)
	ctx := context.Background()
	p.Init(ctx)

	_, err := p.AppendRSVP(ctx, models.RSVPResponse{Name: "Earlier", Email: "early@example.com", Attending: models.RSVPStatusNotAttending})
	require.NoError(t, err)
	before := len(p.RSVPs())

	created, err := p.AppendRSVP(ctx, validRSVP())
	require.NoError(t, err)

	list := p.RSVPs()
	require.Len(t, list, before+1)
	assert.Equal(t, *created, list[0])
	assert.Equal(t, "Jamie", list[0].Name)
	assert.Equal(t, "jamie@example.com", list[0].Email)
	assert.Equal(t, models.RSVPStatusAttending, list[0].Attending)
	assert.Equal(t, 2, list[0].Guests)
	assert.Equal(t, "Can't wait!", list[0].Message)
	assert.False(t, list[0].CreatedAt.IsZero())
	assert.True(t, list[0].CreatedAt.After(list[1].CreatedAt))
}

func TestWeddingProvider_AppendFailureLeavesStateUntouched(t *testing.T) {
	subs := newFakeSubmissionRepo()
	p := newTestProvider(&fakeContentRepo{}, subs)
	ctx := context.Background()
	p.Init(ctx)
	_, err := p.AppendGuestbookEntry(ctx, models.GuestbookEntry{Name: "Pat", Message: "Hi"})
	require.NoError(t, err)

	subs.createErr = errStorageDown

	_, err = p.AppendRSVP(ctx, validRSVP())
	assert.ErrorIs(t, err, ErrSubmissionSaveFailed)
	assert.Empty(t, p.RSVPs())

	_, err = p.AppendGuestbookEntry(ctx, models.GuestbookEntry{Name: "Lee", Message: "Hello"})
	assert.ErrorIs(t, err, ErrSubmissionSaveFailed)
	require.Len(t, p.Guestbook(), 1)
	assert.Equal(t, "Pat", p.Guestbook()[0].Name)
}

func TestWeddingProvider_ReplaceContent(t *testing.T) {
	repo := &fakeContentRepo{}
	p := newTestProvider(repo, newFakeSubmissionRepo())
	ctx := context.Background()
	p.Init(ctx)

	edited := models.NewContentEdit(p.Content()).Partner1("Casey").Build()
	require.NoError(t, p.ReplaceContent(ctx, edited, 1))
	assert.Equal(t, "Casey", p.Content().CoupleNames.Partner1)

	repo.upsertErr = errStorageDown
	failed := models.NewContentEdit(p.Content()).Partner1("Morgan").Build()
	assert.ErrorIs(t, p.ReplaceContent(ctx, failed, 1), ErrContentSaveFailed)
	assert.Equal(t, "Casey", p.Content().CoupleNames.Partner1)
}

func TestWeddingProvider_ContentIsCopied(t *testing.T) {
	p := newTestProvider(&fakeContentRepo{}, newFakeSubmissionRepo())
	c := p.Content()
	c.GearList[0] = "Flip flops"
	assert.Equal(t, "Hiking boots", p.Content().GearList[0])
}

func TestWeddingProvider_RSVPStats(t *testing.T) {
	p := newTestProvider(&fakeContentRepo{}, newFakeSubmissionRepo())
	ctx := context.Background()

	_, err := p.AppendRSVP(ctx, validRSVP())
	require.NoError(t, err)
	three := validRSVP()
	three.Email = "sam@example.com"
	three.Guests = 3
	_, err = p.AppendRSVP(ctx, three)
	require.NoError(t, err)
	_, err = p.AppendRSVP(ctx, models.RSVPResponse{Name: "No", Email: "no@example.com", Attending: models.RSVPStatusNotAttending})
	require.NoError(t, err)

	assert.Equal(t, RSVPStats{Responses: 3, Attending: 2, NotAttending: 1, TotalGuests: 5}, p.RSVPStats())
}

func TestWeddingProvider_ReloadKeepsListOnFailure(t *testing.T) {
	subs := newFakeSubmissionRepo()
	p := newTestProvider(&fakeContentRepo{}, subs)
	ctx := context.Background()
	_, err := p.AppendRSVP(ctx, validRSVP())
	require.NoError(t, err)

	subs.findErr = errStorageDown
	rsvps, _ := p.ReloadSubmissions(ctx)
	assert.False(t, rsvps.OK())
	assert.Len(t, p.RSVPs(), 1)

	subs.findErr = nil
	rsvps, _ = p.ReloadSubmissions(ctx)
	assert.True(t, rsvps.OK())
	assert.NoError(t, p.LastLoadError(KindRSVP))
}
