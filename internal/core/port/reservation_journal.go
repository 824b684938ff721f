package port

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"emerald-ads/internal/core/domain"
)

var ErrReservationNotFound = errors.New("reservation not found")

// ReservationJournal records every funds reservation made before a campaign
// create. Entries left in domain.ReservationOrphaned are the feed for an
// external, idempotent reconciliation process: funds were deducted but no
// campaign is known to exist.
type ReservationJournal interface {
	// Begin stores r in domain.ReservationPending and fills its timestamps.
	Begin(ctx context.Context, r *domain.Reservation) error
	// Transition moves a reservation to state, recording failure if any.
	Transition(ctx context.Context, id uuid.UUID, state domain.ReservationState, failure string) error
	// ListByState returns at most limit reservations in state, oldest first.
	ListByState(ctx context.Context, state domain.ReservationState, limit int) ([]domain.Reservation, error)
}
