package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

// Config tunes a FormService. Zero values select the defaults.
type Config struct {
	// QuietPeriod is the keyword search debounce interval.
	QuietPeriod time.Duration
	// Scheduler drives the debounce timers; SystemScheduler by default.
	Scheduler port.Scheduler
	// IdleTTL unmounts forms not accessed for this long. Zero keeps forms
	// until they are closed.
	IdleTTL time.Duration
	// Now is the clock for idle tracking; time.Now by default.
	Now func() time.Time
}

// FormService implements port.FormUseCase. It owns the mounted forms and
// plays the owner role towards each of them: it reads the session at submit
// time, persists balance updates into the session store and handles the
// save-completion signal.
type FormService struct {
	backend  port.CampaignBackend
	sessions port.SessionStore
	journal  port.ReservationJournal
	logger   *slog.Logger
	cfg      Config

	mu       sync.Mutex
	forms    map[uuid.UUID]*Form
	lastSeen map[uuid.UUID]time.Time
}

// NewFormService returns a service over the given ports. journal may be nil
// when no reservation journal is configured.
func NewFormService(backend port.CampaignBackend, sessions port.SessionStore, journal port.ReservationJournal, logger *slog.Logger, cfg Config) *FormService {
	if cfg.Scheduler == nil {
		cfg.Scheduler = SystemScheduler{}
	}
	if cfg.QuietPeriod <= 0 {
		cfg.QuietPeriod = DefaultQuietPeriod
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	return &FormService{
		backend:  backend,
		sessions: sessions,
		journal:  journal,
		logger:   logger,
		cfg:      cfg,
		forms:    make(map[uuid.UUID]*Form),
		lastSeen: make(map[uuid.UUID]time.Time),
	}
}

var _ port.FormUseCase = (*FormService)(nil)

func (s *FormService) Open(ctx context.Context, userID int64, campaign *domain.Campaign) (*port.FormView, error) {
	session, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("open form: %w", err)
	}

	f := newForm(userID, formDeps{
		backend: s.backend,
		journal: s.journal,
		sched:   s.cfg.Scheduler,
		quiet:   s.cfg.QuietPeriod,
		logger:  s.logger,
	})
	f.setBalance(session.AccountBalance)
	if campaign != nil {
		f.LoadForEdit(*campaign)
	}
	f.towns.Load(ctx)

	s.evictIdle()
	s.mu.Lock()
	s.forms[f.ID()] = f
	s.lastSeen[f.ID()] = s.cfg.Now()
	s.mu.Unlock()

	s.logger.Info("form opened", slog.String("form_id", f.ID().String()), slog.Int64("user_id", userID), slog.Bool("editing", campaign != nil))
	return f.View(), nil
}

// form returns the mounted form and marks it as used. A form idle past
// IdleTTL is unmounted and reported as not found.
func (s *FormService) form(id uuid.UUID) (*Form, error) {
	now := s.cfg.Now()
	s.mu.Lock()
	f, ok := s.forms[id]
	if !ok {
		s.mu.Unlock()
		return nil, port.ErrFormNotFound
	}
	if s.idle(id, now) {
		s.unmountLocked(id)
		s.mu.Unlock()
		f.Close()
		s.logger.Info("idle form unmounted", slog.String("form_id", id.String()))
		return nil, port.ErrFormNotFound
	}
	s.lastSeen[id] = now
	s.mu.Unlock()
	return f, nil
}

func (s *FormService) idle(id uuid.UUID, now time.Time) bool {
	return s.cfg.IdleTTL > 0 && now.Sub(s.lastSeen[id]) > s.cfg.IdleTTL
}

func (s *FormService) unmountLocked(id uuid.UUID) {
	delete(s.forms, id)
	delete(s.lastSeen, id)
}

// evictIdle unmounts every form idle past IdleTTL.
func (s *FormService) evictIdle() {
	if s.cfg.IdleTTL <= 0 {
		return
	}
	now := s.cfg.Now()
	var expired []*Form
	s.mu.Lock()
	for id, f := range s.forms {
		if s.idle(id, now) {
			s.unmountLocked(id)
			expired = append(expired, f)
		}
	}
	s.mu.Unlock()
	for _, f := range expired {
		f.Close()
	}
	if len(expired) > 0 {
		s.logger.Info("idle forms unmounted", slog.Int("count", len(expired)))
	}
}

func (s *FormService) Get(id uuid.UUID) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	return f.View(), nil
}

func (s *FormService) Close(id uuid.UUID) error {
	s.mu.Lock()
	f, ok := s.forms[id]
	s.unmountLocked(id)
	s.mu.Unlock()
	if !ok {
		return port.ErrFormNotFound
	}
	f.Close()
	return nil
}

// CloseAll unmounts every form, cancelling pending keyword lookups.
func (s *FormService) CloseAll() {
	s.mu.Lock()
	forms := s.forms
	s.forms = make(map[uuid.UUID]*Form)
	s.lastSeen = make(map[uuid.UUID]time.Time)
	s.mu.Unlock()
	for _, f := range forms {
		f.Close()
	}
}

func (s *FormService) SetField(id uuid.UUID, field domain.Field, value string) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	if err = f.SetField(field, value); err != nil {
		return f.View(), err
	}
	return f.View(), nil
}

func (s *FormService) SetTown(id uuid.UUID, town string) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	f.SetTown(town)
	return f.View(), nil
}

func (s *FormService) KeywordInput(id uuid.UUID, text string) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	f.KeywordInput(text)
	return f.View(), nil
}

func (s *FormService) AddKeyword(id uuid.UUID) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	f.AddKeyword()
	return f.View(), nil
}

func (s *FormService) SelectKeyword(id uuid.UUID, keyword string) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	f.SelectKeyword(keyword)
	return f.View(), nil
}

func (s *FormService) RemoveKeyword(id uuid.UUID, keyword string) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	f.RemoveKeyword(keyword)
	return f.View(), nil
}

// Submit reads the current session so the balance check uses the latest
// known balance, then runs the form's submit workflow.
func (s *FormService) Submit(ctx context.Context, id uuid.UUID) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	session, err := s.sessions.Get(ctx, f.userID)
	if err != nil {
		return f.View(), fmt.Errorf("submit: %w", err)
	}
	_, err = f.Submit(ctx, *session, s.balanceUpdater(f.userID))
	var se *port.SubmitError
	switch {
	case err == nil:
		s.logger.Info("campaign saved", slog.String("form_id", id.String()))
	case errors.As(err, &se) && se.FundsDeducted:
		s.logger.Warn("submission left funds reserved without a campaign", slog.String("form_id", id.String()), slog.Any("error", err))
	default:
		s.logger.Debug("submission failed", slog.String("form_id", id.String()), slog.Any("error", err))
	}
	return f.View(), err
}

func (s *FormService) balanceUpdater(userID int64) func(context.Context, decimal.Decimal) {
	return func(ctx context.Context, b decimal.Decimal) {
		if _, err := s.sessions.UpdateBalance(ctx, userID, b); err != nil {
			s.logger.Error("session balance update error", slog.Int64("user_id", userID), slog.Any("error", err))
		}
	}
}

func (s *FormService) Deselect(id uuid.UUID) (*port.FormView, error) {
	f, err := s.form(id)
	if err != nil {
		return nil, err
	}
	f.Reset()
	return f.View(), nil
}

// ListCampaigns returns the campaigns owned by userID, or every campaign
// when userID is zero.
func (s *FormService) ListCampaigns(ctx context.Context, userID int64) ([]domain.Campaign, error) {
	all, err := s.backend.ListCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	if userID == 0 {
		return all, nil
	}
	out := make([]domain.Campaign, 0, len(all))
	for _, c := range all {
		if c.UserID == userID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (s *FormService) PutSession(ctx context.Context, session domain.UserSession) error {
	return s.sessions.Put(ctx, session)
}

func (s *FormService) ListReservations(ctx context.Context, state domain.ReservationState, limit int) ([]domain.Reservation, error) {
	if s.journal == nil {
		return []domain.Reservation{}, nil
	}
	return s.journal.ListByState(ctx, state, limit)
}
