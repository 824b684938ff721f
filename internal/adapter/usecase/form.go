package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

// Form is one mounted campaign editor. The draft is guarded by mu; the
// search, directory, submitter and error surface synchronise themselves.
// Lock order is always mu before any component lock.
type Form struct {
	id     uuid.UUID
	userID int64

	errs      *domain.ValidationErrors
	search    *KeywordSearch
	towns     *TownDirectory
	submitter *Submitter
	cancel    context.CancelFunc

	mu       sync.Mutex
	draft    domain.Draft
	revision int
	balance  *decimal.Decimal
}

type formDeps struct {
	backend port.CampaignBackend
	journal port.ReservationJournal
	sched   port.Scheduler
	quiet   time.Duration
	logger  *slog.Logger
}

func newForm(userID int64, deps formDeps) *Form {
	id := uuid.New()
	logger := deps.logger.With(slog.String("form_id", id.String()), slog.Int64("user_id", userID))
	ctx, cancel := context.WithCancel(context.Background())
	errs := domain.NewValidationErrors()
	return &Form{
		id:        id,
		userID:    userID,
		errs:      errs,
		search:    NewKeywordSearch(ctx, deps.backend, deps.sched, deps.quiet, errs, logger),
		towns:     NewTownDirectory(deps.backend, errs, logger),
		submitter: NewSubmitter(deps.backend, deps.journal, logger),
		cancel:    cancel,
	}
}

func (f *Form) ID() uuid.UUID { return f.id }

// LoadForEdit switches the form to editing c.
func (f *Form) LoadForEdit(c domain.Campaign) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.LoadForEdit(c)
}

// Reset drops the draft and keyword input and returns to create mode.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.Reset()
	f.search.Clear()
}

func (f *Form) SetField(name domain.Field, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.SetField(name, value, f.errs)
}

func (f *Form) SetTown(town string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.draft.SetTown(town)
}

func (f *Form) KeywordInput(text string) { f.search.OnInput(text) }

func (f *Form) AddKeyword() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.search.AddInput(&f.draft.Keywords)
}

func (f *Form) SelectKeyword(keyword string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.search.Select(&f.draft.Keywords, keyword)
}

func (f *Form) RemoveKeyword(keyword string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.draft.Keywords.Remove(keyword)
}

func (f *Form) setBalance(b decimal.Decimal) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.balance = &b
}

// markSaved is the save-completion signal: the owner clears any selection
// and the revision bump tells clients to refetch their campaign list.
func (f *Form) markSaved() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.revision++
	if f.draft.Editing() {
		f.draft.Reset()
		f.search.Clear()
	}
}

// Submit snapshots the draft and runs the submit workflow against session.
// A successful create resets the draft.
func (f *Form) Submit(ctx context.Context, session domain.UserSession, onBalance func(context.Context, decimal.Decimal)) (SubmitResult, error) {
	f.mu.Lock()
	snapshot := f.draft.Clone()
	f.mu.Unlock()

	res, err := f.submitter.Submit(ctx, SubmitRequest{
		Draft:   snapshot,
		Session: session,
		Errors:  f.errs,
		OnBalanceUpdate: func(ctx context.Context, b decimal.Decimal) {
			f.setBalance(b)
			if onBalance != nil {
				onBalance(ctx, b)
			}
		},
		OnSave: f.markSaved,
	})
	if err == nil && res.Created {
		f.Reset()
	}
	return res, err
}

// Close aborts any pending keyword lookup.
func (f *Form) Close() {
	f.search.Clear()
	f.cancel()
}

// View returns the presentation snapshot.
func (f *Form) View() *port.FormView {
	f.mu.Lock()
	defer f.mu.Unlock()

	v := &port.FormView{
		ID:      f.id,
		UserID:  f.userID,
		Editing: f.draft.Editing(),
		Draft: port.DraftView{
			ID:           f.draft.ID,
			Name:         f.draft.Name,
			Keywords:     f.draft.Keywords.Clone(),
			BidAmount:    f.draft.BidAmount,
			CampaignFund: f.draft.CampaignFund,
			Status:       f.draft.Status,
			Town:         f.draft.Town,
			Radius:       f.draft.Radius,
		},
		KeywordInput: f.search.Input(),
		Suggestions:  f.search.Suggestions(),
		Towns:        f.towns.Options(),
		Loading: port.LoadingView{
			Towns:    f.towns.Loading(),
			Keywords: f.search.Loading(),
			Submit:   f.submitter.Submitting(),
		},
		Errors:        f.errs.Snapshot(),
		State:         f.submitter.State(),
		SavedRevision: f.revision,
	}
	if opt, ok := f.towns.Resolve(f.draft.Town); ok {
		v.SelectedTown = &opt
	}
	if f.draft.ID != nil {
		id := *f.draft.ID
		v.Draft.ID = &id
	}
	if f.balance != nil {
		b := *f.balance
		v.Balance = &b
	}
	return v
}
