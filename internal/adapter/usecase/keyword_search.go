package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"
	"unicode/utf8"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

// DefaultQuietPeriod is how long keyword input must stay unchanged before a
// suggestion lookup is issued.
const DefaultQuietPeriod = 300 * time.Millisecond

// KeywordSearch debounces keyword input and keeps at most one suggestion
// lookup live. Every input change bumps a generation counter, stops the
// pending timer and cancels the in-flight request; a result is applied only
// if its generation is still current when it resolves.
type KeywordSearch struct {
	backend port.CampaignBackend
	sched   port.Scheduler
	quiet   time.Duration
	errs    *domain.ValidationErrors
	logger  *slog.Logger

	mu          sync.Mutex
	ctx         context.Context
	input       string
	suggestions []string
	loading     bool
	generation  uint64
	timer       port.Timer
	cancel      context.CancelFunc
}

// NewKeywordSearch returns a search bound to ctx; cancelling ctx aborts any
// in-flight lookup.
func NewKeywordSearch(ctx context.Context, backend port.CampaignBackend, sched port.Scheduler, quiet time.Duration, errs *domain.ValidationErrors, logger *slog.Logger) *KeywordSearch {
	if quiet <= 0 {
		quiet = DefaultQuietPeriod
	}
	return &KeywordSearch{
		backend: backend,
		sched:   sched,
		quiet:   quiet,
		errs:    errs,
		logger:  logger,
		ctx:     ctx,
	}
}

// OnInput records text. Input longer than one character schedules a lookup
// after the quiet period; shorter input clears the suggestions.
func (s *KeywordSearch) OnInput(text string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.input = text
	s.supersedeLocked()
	if utf8.RuneCountInString(text) <= 1 {
		s.suggestions = nil
		return
	}
	gen := s.generation
	s.timer = s.sched.AfterFunc(s.quiet, func() { s.lookup(gen, text) })
}

// Select adds a suggested keyword to set and clears input and suggestions.
func (s *KeywordSearch) Select(set *domain.KeywordSet, keyword string) {
	set.Add(keyword)
	s.Clear()
}

// AddInput adds the typed text to set. Empty or duplicate input leaves the
// input box untouched and reports false.
func (s *KeywordSearch) AddInput(set *domain.KeywordSet) bool {
	s.mu.Lock()
	text := s.input
	s.mu.Unlock()

	if !set.Add(text) {
		return false
	}
	s.Clear()
	return true
}

// Clear empties input and suggestions and abandons any pending lookup.
func (s *KeywordSearch) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.input = ""
	s.suggestions = nil
	s.supersedeLocked()
}

// Input returns the current free text.
func (s *KeywordSearch) Input() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.input
}

// Suggestions returns a copy of the live suggestion list.
func (s *KeywordSearch) Suggestions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string{}, s.suggestions...)
}

// Loading reports whether a lookup is outstanding.
func (s *KeywordSearch) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

func (s *KeywordSearch) supersedeLocked() {
	s.generation++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.loading = false
}

func (s *KeywordSearch) lookup(gen uint64, text string) {
	s.mu.Lock()
	if gen != s.generation {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(s.ctx)
	s.timer = nil
	s.cancel = cancel
	s.loading = true
	s.mu.Unlock()

	results, err := s.backend.SearchKeywords(ctx, text)
	cancel()

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		s.logger.Debug("dropping stale keyword suggestions", slog.String("search", text))
		return
	}
	s.cancel = nil
	s.loading = false
	if err != nil {
		s.logger.Error("keyword suggestions error", slog.String("search", text), slog.Any("error", err))
		s.suggestions = nil
		s.errs.Set(domain.CategoryKeywords, domain.MsgKeywordsLoad)
		return
	}
	s.suggestions = results
	s.errs.Clear(domain.CategoryKeywords)
}
