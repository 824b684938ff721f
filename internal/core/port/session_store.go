package port

import (
	"context"
	"errors"

	"github.com/shopspring/decimal"

	"emerald-ads/internal/core/domain"
)

var ErrSessionNotFound = errors.New("session not found")

// SessionStore holds signed-in user sessions. Implementations must apply
// balance updates atomically relative to their own storage so that forms and
// other balance-displaying components do not lose each other's writes.
type SessionStore interface {
	Get(ctx context.Context, userID int64) (*domain.UserSession, error)
	Put(ctx context.Context, s domain.UserSession) error
	// UpdateBalance overwrites the cached balance and returns the session
	// as stored.
	UpdateBalance(ctx context.Context, userID int64, balance decimal.Decimal) (*domain.UserSession, error)
}
