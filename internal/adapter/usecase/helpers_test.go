package usecase

import (
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// decimalEq matches a decimal argument by value rather than representation.
func decimalEq(s string) interface{} {
	want := decimal.RequireFromString(s)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(want) })
}

func springSale() domain.Draft {
	return domain.Draft{
		Name:         "Spring Sale",
		Keywords:     domain.ParseKeywords("shoes, sale"),
		BidAmount:    "2.00",
		CampaignFund: "50.00",
		Town:         "Springfield",
		Radius:       "5",
	}
}

func session(id int64, balance string) domain.UserSession {
	return domain.UserSession{ID: id, Username: "ann", AccountBalance: decimal.RequireFromString(balance)}
}

// manualScheduler hands timers to the test instead of the wall clock.
type manualScheduler struct {
	mu     sync.Mutex
	timers []*manualTimer
}

type manualTimer struct {
	mu      sync.Mutex
	d       time.Duration
	f       func()
	stopped bool
	fired   bool
}

func (s *manualScheduler) AfterFunc(d time.Duration, f func()) port.Timer {
	t := &manualTimer{d: d, f: f}
	s.mu.Lock()
	s.timers = append(s.timers, t)
	s.mu.Unlock()
	return t
}

func (s *manualScheduler) Timers() []*manualTimer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*manualTimer{}, s.timers...)
}

// FirePending runs every timer that was neither stopped nor fired and
// returns how many ran.
func (s *manualScheduler) FirePending() int {
	n := 0
	for _, t := range s.Timers() {
		if t.Fire() {
			n++
		}
	}
	return n
}

func (t *manualTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

// Fire runs the scheduled call on the calling goroutine unless it was
// stopped or already ran.
func (t *manualTimer) Fire() bool {
	t.mu.Lock()
	if t.stopped || t.fired {
		t.mu.Unlock()
		return false
	}
	t.fired = true
	t.mu.Unlock()
	t.f()
	return true
}
