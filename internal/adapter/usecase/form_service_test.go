package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
	"emerald-ads/internal/core/port/mocks"
)

type serviceFixture struct {
	svc      *FormService
	backend  *mocks.MockCampaignBackend
	sessions *mocks.MockSessionStore
	sched    *manualScheduler
}

func newServiceFixture(t *testing.T) serviceFixture {
	backend := mocks.NewMockCampaignBackend(t)
	sessions := mocks.NewMockSessionStore(t)
	sched := &manualScheduler{}
	svc := NewFormService(backend, sessions, nil, testLogger(), Config{Scheduler: sched})
	return serviceFixture{svc: svc, backend: backend, sessions: sessions, sched: sched}
}

func (f serviceFixture) expectSession(s domain.UserSession) {
	f.sessions.EXPECT().Get(mock.Anything, s.ID).Return(&s, nil).Maybe()
}

func (f serviceFixture) expectTowns(names ...string) {
	towns := make([]domain.Town, 0, len(names))
	for _, n := range names {
		towns = append(towns, domain.Town{Name: n})
	}
	f.backend.EXPECT().ListTowns(mock.Anything).Return(towns, nil).Once()
}

func TestOpenDropsUnnamedTowns(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "100"))
	f.expectTowns("Springfield", "", "Shelbyville", "Springfield")

	view, err := f.svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)

	assert.Equal(t, []domain.TownOption{
		{Value: "Springfield", Label: "Springfield"},
		{Value: "Shelbyville", Label: "Shelbyville"},
	}, view.Towns)
	assert.False(t, view.Editing)
	assert.Nil(t, view.SelectedTown)
	require.NotNil(t, view.Balance)
	assert.True(t, view.Balance.Equal(decimal.NewFromInt(100)))

	view, err = f.svc.SetTown(view.ID, "Ogdenville")
	require.NoError(t, err)
	assert.Nil(t, view.SelectedTown, "unknown town resolves to no selection")
	assert.Nil(t, view.Errors[domain.CategoryTowns])

	view, err = f.svc.SetTown(view.ID, "Shelbyville")
	require.NoError(t, err)
	require.NotNil(t, view.SelectedTown)
	assert.Equal(t, "Shelbyville", view.SelectedTown.Value)
}

func TestOpenTownLoadFailureIsNotFatal(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "100"))
	f.backend.EXPECT().ListTowns(mock.Anything).Return(nil, errors.New("timeout")).Once()

	view, err := f.svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)
	assert.Empty(t, view.Towns)
	require.NotNil(t, view.Errors[domain.CategoryTowns])
	assert.Equal(t, domain.MsgTownsLoad, *view.Errors[domain.CategoryTowns])
}

func TestOpenUnknownSession(t *testing.T) {
	f := newServiceFixture(t)
	f.sessions.EXPECT().Get(mock.Anything, int64(9)).Return(nil, port.ErrSessionNotFound).Once()

	_, err := f.svc.Open(context.Background(), 9, nil)
	assert.ErrorIs(t, err, port.ErrSessionNotFound)
}

func TestCreateCampaignEndToEnd(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "100.00"))
	f.expectTowns("Springfield")
	f.backend.EXPECT().SearchKeywords(mock.Anything, "sho").Return([]string{"shoes", "shorts"}, nil).Once()
	f.backend.EXPECT().UpdateBalance(mock.Anything, int64(7), decimalEq("50")).Return(nil).Once()
	f.backend.EXPECT().CreateCampaign(mock.Anything, mock.MatchedBy(func(p domain.CampaignPayload) bool {
		return p.Keywords == "shoes, sale" && p.Town == "Springfield" && p.Radius == 5 && !p.Status
	})).Return(&domain.Campaign{ID: 100, Name: "Spring Sale"}, nil).Once()
	f.sessions.EXPECT().UpdateBalance(mock.Anything, int64(7), decimalEq("50")).
		Return(&domain.UserSession{ID: 7, AccountBalance: decimal.NewFromInt(50)}, nil).Once()

	view, err := f.svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)
	id := view.ID

	_, err = f.svc.SetField(id, domain.FieldName, "Spring Sale")
	require.NoError(t, err)
	_, err = f.svc.SetField(id, domain.FieldCampaignFund, "50.00")
	require.NoError(t, err)
	_, err = f.svc.SetField(id, domain.FieldBidAmount, "2.00")
	require.NoError(t, err)
	_, err = f.svc.SetField(id, domain.FieldRadius, "5")
	require.NoError(t, err)
	_, err = f.svc.SetField(id, domain.FieldStatus, "false")
	require.NoError(t, err)
	_, err = f.svc.SetTown(id, "Springfield")
	require.NoError(t, err)

	_, err = f.svc.KeywordInput(id, "sho")
	require.NoError(t, err)
	require.Equal(t, 1, f.sched.FirePending())
	view, err = f.svc.Get(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"shoes", "shorts"}, view.Suggestions)

	view, err = f.svc.SelectKeyword(id, "shoes")
	require.NoError(t, err)
	assert.Empty(t, view.Suggestions)
	_, err = f.svc.KeywordInput(id, "sale")
	require.NoError(t, err)
	view, err = f.svc.AddKeyword(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"shoes", "sale"}, view.Draft.Keywords.Keywords())

	view, err = f.svc.Submit(context.Background(), id)
	require.NoError(t, err)

	assert.Equal(t, port.SubmitSucceeded, view.State)
	assert.Equal(t, 1, view.SavedRevision)
	assert.False(t, view.Editing)
	assert.Empty(t, view.Draft.Name)
	assert.Empty(t, view.Draft.BidAmount)
	assert.Empty(t, view.Draft.CampaignFund)
	assert.False(t, view.Draft.Status)
	assert.Equal(t, 0, view.Draft.Keywords.Len())
	assert.Empty(t, view.KeywordInput)
	require.NotNil(t, view.Balance)
	assert.True(t, view.Balance.Equal(decimal.NewFromInt(50)))
	assert.False(t, view.Loading.Submit)
}

func TestCreateCampaignOverBalance(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "100.00"))
	f.expectTowns("Springfield")

	view, err := f.svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)
	id := view.ID
	for field, value := range map[domain.Field]string{
		domain.FieldName:         "Spring Sale",
		domain.FieldCampaignFund: "150.00",
		domain.FieldBidAmount:    "2.00",
		domain.FieldRadius:       "5",
		domain.FieldTown:         "Springfield",
	} {
		_, err = f.svc.SetField(id, field, value)
		require.NoError(t, err)
	}
	_, err = f.svc.SelectKeyword(id, "shoes")
	require.NoError(t, err)

	view, err = f.svc.Submit(context.Background(), id)
	require.ErrorIs(t, err, port.ErrInsufficientFunds)
	require.NotNil(t, view.Errors[domain.CategoryBalance])
	assert.Equal(t, domain.MsgInsufficientBalance, *view.Errors[domain.CategoryBalance])
	assert.Equal(t, "Spring Sale", view.Draft.Name, "draft is kept after a failed submission")
	assert.Equal(t, port.SubmitFailed, view.State)
	f.backend.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
	f.sessions.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestEditCampaignLocksFinancialTerms(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "10"))
	f.expectTowns("Springfield")
	f.backend.EXPECT().UpdateCampaign(mock.Anything, int64(42), mock.Anything).Return(&domain.Campaign{ID: 42}, nil).Once()

	campaign := &domain.Campaign{
		ID:           42,
		Name:         "Spring Sale",
		Keywords:     "shoes, sale",
		BidAmount:    decimal.RequireFromString("2"),
		CampaignFund: decimal.RequireFromString("50"),
		Town:         "Springfield",
		Radius:       5,
		UserID:       7,
	}
	view, err := f.svc.Open(context.Background(), 7, campaign)
	require.NoError(t, err)
	require.True(t, view.Editing)
	require.NotNil(t, view.SelectedTown)

	view, err = f.svc.SetField(view.ID, domain.FieldCampaignFund, "5000")
	require.ErrorIs(t, err, domain.ErrFinancialFieldLocked)
	assert.Equal(t, "50", view.Draft.CampaignFund)

	view, err = f.svc.Submit(context.Background(), view.ID)
	require.NoError(t, err)
	assert.False(t, view.Editing, "save signal deselects the edited campaign")
	assert.Equal(t, 1, view.SavedRevision)
	f.backend.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything, mock.Anything)
}

func TestDeselectReturnsToCreateMode(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "10"))
	f.expectTowns()

	view, err := f.svc.Open(context.Background(), 7, &domain.Campaign{ID: 1, Name: "x", Keywords: "a"})
	require.NoError(t, err)
	require.True(t, view.Editing)

	view, err = f.svc.Deselect(view.ID)
	require.NoError(t, err)
	assert.False(t, view.Editing)
	assert.Empty(t, view.Draft.Name)
	assert.Equal(t, 0, view.Draft.Keywords.Len())
}

func TestRemoveKeyword(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "10"))
	f.expectTowns()

	view, err := f.svc.Open(context.Background(), 7, &domain.Campaign{ID: 1, Keywords: "shoes, sale"})
	require.NoError(t, err)
	view, err = f.svc.RemoveKeyword(view.ID, "shoes")
	require.NoError(t, err)
	assert.Equal(t, []string{"sale"}, view.Draft.Keywords.Keywords())
}

func TestUnknownForm(t *testing.T) {
	f := newServiceFixture(t)
	id := uuid.New()

	_, err := f.svc.Get(id)
	assert.ErrorIs(t, err, port.ErrFormNotFound)
	_, err = f.svc.Submit(context.Background(), id)
	assert.ErrorIs(t, err, port.ErrFormNotFound)
	assert.ErrorIs(t, f.svc.Close(id), port.ErrFormNotFound)
}

func TestCloseForgetsForm(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "10"))
	f.expectTowns()

	view, err := f.svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)
	require.NoError(t, f.svc.Close(view.ID))
	_, err = f.svc.Get(view.ID)
	assert.ErrorIs(t, err, port.ErrFormNotFound)
}

func TestCloseAll(t *testing.T) {
	f := newServiceFixture(t)
	f.expectSession(session(7, "10"))
	f.backend.EXPECT().ListTowns(mock.Anything).Return(nil, nil).Twice()

	a, err := f.svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)
	b, err := f.svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)

	f.svc.CloseAll()
	_, err = f.svc.Get(a.ID)
	assert.ErrorIs(t, err, port.ErrFormNotFound)
	_, err = f.svc.Get(b.ID)
	assert.ErrorIs(t, err, port.ErrFormNotFound)
}

func TestIdleFormsAreUnmounted(t *testing.T) {
	backend := mocks.NewMockCampaignBackend(t)
	sessions := mocks.NewMockSessionStore(t)
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewFormService(backend, sessions, nil, testLogger(), Config{
		Scheduler: &manualScheduler{},
		IdleTTL:   10 * time.Minute,
		Now:       func() time.Time { return now },
	})
	s := session(7, "10")
	sessions.EXPECT().Get(mock.Anything, int64(7)).Return(&s, nil).Maybe()
	backend.EXPECT().ListTowns(mock.Anything).Return(nil, nil).Times(3)

	stale, err := svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)
	kept, err := svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)

	now = now.Add(8 * time.Minute)
	_, err = svc.Get(kept.ID)
	require.NoError(t, err, "access refreshes the idle clock")

	now = now.Add(5 * time.Minute)
	_, err = svc.Get(stale.ID)
	assert.ErrorIs(t, err, port.ErrFormNotFound)
	_, err = svc.Get(kept.ID)
	require.NoError(t, err)

	now = now.Add(11 * time.Minute)
	_, err = svc.Open(context.Background(), 7, nil)
	require.NoError(t, err)
	svc.mu.Lock()
	_, mounted := svc.forms[kept.ID]
	count := len(svc.forms)
	svc.mu.Unlock()
	assert.False(t, mounted, "opening a form sweeps idle ones")
	assert.Equal(t, 1, count)
}

func TestListCampaignsFiltersByOwner(t *testing.T) {
	f := newServiceFixture(t)
	f.backend.EXPECT().ListCampaigns(mock.Anything).Return([]domain.Campaign{
		{ID: 1, UserID: 7}, {ID: 2, UserID: 8}, {ID: 3, UserID: 7},
	}, nil).Twice()

	mine, err := f.svc.ListCampaigns(context.Background(), 7)
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, int64(3), mine[1].ID)

	all, err := f.svc.ListCampaigns(context.Background(), 0)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestListReservationsWithoutJournal(t *testing.T) {
	f := newServiceFixture(t)
	got, err := f.svc.ListReservations(context.Background(), domain.ReservationOrphaned, 10)
	require.NoError(t, err)
	assert.Empty(t, got)
}
