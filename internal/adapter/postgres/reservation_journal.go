package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"emerald-ads/internal/core/domain"
	"emerald-ads/internal/core/port"
)

// DB is the subset of pgxpool.Pool the journal uses.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// ReservationJournal implements port.ReservationJournal on the reservations
// table.
type ReservationJournal struct {
	db DB
}

var _ port.ReservationJournal = (*ReservationJournal)(nil)

func NewReservationJournal(db DB) *ReservationJournal {
	return &ReservationJournal{db: db}
}

func (j *ReservationJournal) Begin(ctx context.Context, r *domain.Reservation) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	r.State = domain.ReservationPending
	err := j.db.QueryRow(ctx, `INSERT INTO reservations
    (id, user_id, campaign_name, amount, previous_balance, new_balance, state, failure)
VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
RETURNING created_at, updated_at`,
		r.ID, r.UserID, r.CampaignName, r.Amount, r.PreviousBalance, r.NewBalance, string(r.State), r.Failure,
	).Scan(&r.CreatedAt, &r.UpdatedAt)
	if err != nil {
		return fmt.Errorf("insert reservation %s: %w", r.ID, err)
	}
	return nil
}

func (j *ReservationJournal) Transition(ctx context.Context, id uuid.UUID, state domain.ReservationState, failure string) error {
	if !state.Valid() {
		return fmt.Errorf("unknown reservation state %q", state)
	}
	tag, err := j.db.Exec(ctx, `UPDATE reservations SET state = $2, failure = $3, updated_at = now() WHERE id = $1`,
		id, string(state), failure)
	if err != nil {
		return fmt.Errorf("update reservation %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return port.ErrReservationNotFound
	}
	return nil
}

func (j *ReservationJournal) ListByState(ctx context.Context, state domain.ReservationState, limit int) ([]domain.Reservation, error) {
	rows, err := j.db.Query(ctx, `SELECT id, user_id, campaign_name, amount, previous_balance, new_balance,
       state, failure, created_at, updated_at
FROM reservations
WHERE state = $1
ORDER BY created_at
LIMIT $2`, string(state), limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.Reservation, error) {
		var (
			r     domain.Reservation
			state string
		)
		err := row.Scan(&r.ID, &r.UserID, &r.CampaignName, &r.Amount, &r.PreviousBalance, &r.NewBalance,
			&state, &r.Failure, &r.CreatedAt, &r.UpdatedAt)
		r.State = domain.ReservationState(state)
		return r, err
	})
}
