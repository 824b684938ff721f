package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReservationState tracks a funds reservation through a create submission.
type ReservationState string

const (
	// ReservationPending is recorded before the balance deduction is sent.
	ReservationPending ReservationState = "pending"
	// ReservationReserved means the deduction was confirmed by the backend.
	ReservationReserved ReservationState = "reserved"
	// ReservationCommitted means the campaign was created after the deduction.
	ReservationCommitted ReservationState = "committed"
	// ReservationAborted means the deduction itself failed.
	ReservationAborted ReservationState = "aborted"
	// ReservationOrphaned means funds were deducted but the campaign create
	// failed. These are what an external reconciler picks up.
	ReservationOrphaned ReservationState = "orphaned"
)

func (s ReservationState) Valid() bool {
	switch s {
	case ReservationPending, ReservationReserved, ReservationCommitted, ReservationAborted, ReservationOrphaned:
		return true
	}
	return false
}

// Reservation is a journal entry for one balance deduction made ahead of a
// campaign create.
type Reservation struct {
	ID              uuid.UUID        `json:"id"`
	UserID          int64            `json:"userId"`
	CampaignName    string           `json:"campaignName"`
	Amount          decimal.Decimal  `json:"amount"`
	PreviousBalance decimal.Decimal  `json:"previousBalance"`
	NewBalance      decimal.Decimal  `json:"newBalance"`
	State           ReservationState `json:"state"`
	Failure         string           `json:"failure,omitempty"`
	CreatedAt       time.Time        `json:"createdAt"`
	UpdatedAt       time.Time        `json:"updatedAt"`
}
